package vm

import (
	"fmt"
	"os"
)

// debugPrintf outputs an execution trace line when DEBUG is set in the
// environment, mirroring the teacher's own DEBUG-gated tracing convention
// rather than reaching for a structured logging library.
func debugPrintf(format string, args ...any) {
	if os.Getenv("DEBUG") == "" {
		return
	}
	fmt.Printf(format, args...)
}
