package vm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Cdayz/simple-lang/bytecode"
)

// printHandler reads its operand in any of the three read-modes and emits it
// to the VM's configured writer.
func printHandler(s *State, rec bytecode.Record) (bool, error) {
	val, err := s.readValue(rec.Mode1, rec.Payload1)
	if err != nil {
		return false, fmt.Errorf("PRINT: %w", err)
	}

	if _, err := fmt.Fprintf(s.Stdout, "VM PRINT: %d\n", val); err != nil {
		return false, err
	}
	return false, s.Stdout.Flush()
}

// inputHandler reads lines from the VM's configured reader until one parses
// as an integer, then writes it to the destination operand. In-place is not
// a legal destination.
func inputHandler(s *State, rec bytecode.Record) (bool, error) {
	if rec.Mode1 != bytecode.ModeRegister && rec.Mode1 != bytecode.ModeRegisterPointer {
		return false, &BadArgumentError{Mnemonic: "INPUT", Detail: "destination must be a register or register pointer"}
	}

	for {
		line, err := s.Stdin.ReadString('\n')
		trimmed := strings.TrimSpace(line)

		if trimmed != "" {
			if v, perr := strconv.ParseInt(trimmed, 10, 64); perr == nil {
				return false, s.writeValue(rec.Mode1, rec.Payload1, v)
			}
		}

		if err != nil {
			return false, fmt.Errorf("INPUT: %w", err)
		}
	}
}
