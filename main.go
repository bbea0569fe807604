package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

// shortFlagDispatch handles the --compile|-c and --execute|-e top-level
// flags, kept alongside the compile/execute subcommands for compatibility
// with the source tool's documented invocation style. It reports whether it
// handled the arguments at all, and the exit status if so.
func shortFlagDispatch(args []string) (handled bool, status subcommands.ExitStatus) {
	if len(args) < 2 {
		return false, subcommands.ExitSuccess
	}

	switch args[0] {
	case "--compile", "-c":
		return true, compileFile(args[1])
	case "--execute", "-e":
		return true, executeFile(args[1])
	default:
		return false, subcommands.ExitSuccess
	}
}

func main() {
	if handled, status := shortFlagDispatch(os.Args[1:]); handled {
		os.Exit(int(status))
	}

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&compileCmd{}, "")
	subcommands.Register(&dumpCmd{}, "")
	subcommands.Register(&executeCmd{}, "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&disasmCmd{}, "")
	subcommands.Register(&versionCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
