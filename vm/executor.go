package vm

import (
	"fmt"

	"github.com/Cdayz/simple-lang/bytecode"
	"github.com/Cdayz/simple-lang/opcode"
)

// Execute runs code (a header-stripped bytecode body) to completion: a
// label pre-pass followed by the dispatch loop. It returns the final State
// so callers can inspect registers and memory after a run.
func Execute(code []byte) (*State, error) {
	return ExecuteWithIO(code, nil)
}

// ExecuteWithIO runs code against a caller-supplied State (as built by
// NewWithIO), so tests can inject Stdin/Stdout. A nil state builds one with
// the default console streams via New.
func ExecuteWithIO(code []byte, s *State) (*State, error) {
	if s == nil {
		s = New(code)
	} else {
		s.code = code
	}

	if len(code)%bytecode.RecordSize != 0 {
		return s, fmt.Errorf("vm: code length %d is not a multiple of the record size %d", len(code), bytecode.RecordSize)
	}

	if err := s.prepassLabels(); err != nil {
		return s, err
	}

	for s.ip < s.CodeSize() && !s.halted {
		rec, err := bytecode.DecodeRecord(s.code, s.ip)
		if err != nil {
			return s, err
		}

		h := table[rec.Opcode]
		if h == nil {
			return s, fmt.Errorf("vm: opcode %s has no handler", rec.Opcode)
		}

		debugPrintf("vm: ip=%d opcode=%s mode1=%d payload1=%d mode2=%d payload2=%d\n",
			s.ip, rec.Opcode, rec.Mode1, rec.Payload1, rec.Mode2, rec.Payload2)

		jumped, err := h(s, rec)
		if err != nil {
			return s, fmt.Errorf("vm: at offset %d (%s): %w", s.ip, rec.Opcode, err)
		}

		if !jumped {
			s.ip += bytecode.RecordSize
		}
	}

	return s, nil
}

// prepassLabels walks the whole code region once, recording every LABEL
// instruction's offset before execution starts. Forward references (a JMP
// or CALL appearing before the LABEL it targets) only work because of this
// pass.
func (s *State) prepassLabels() error {
	for off := 0; off+bytecode.RecordSize <= len(s.code); off += bytecode.RecordSize {
		rec, err := bytecode.DecodeRecord(s.code, off)
		if err != nil {
			return err
		}
		if rec.Opcode == opcode.LABEL {
			s.setLabelOffset(rec.Payload1, off)
		}
	}
	s.ip = 0
	return nil
}
