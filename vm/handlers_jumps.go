package vm

import (
	"github.com/Cdayz/simple-lang/bytecode"
	"github.com/Cdayz/simple-lang/register"
)

// jumpOp is the generator the source uses for every conditional (and the
// one unconditional) jump: look up the target label, and if cond holds, set
// the instruction pointer to the label's offset. The dispatch loop's usual
// +12 advance then lands just past the LABEL instruction at that offset.
func jumpOp(mnemonic string, cond func(s *State) bool) handler {
	return func(s *State, rec bytecode.Record) (bool, error) {
		offset, ok := s.labelOffset(rec.Payload1)
		if !ok {
			return false, &BadLabelError{LabelIndex: rec.Payload1}
		}
		if cond(s) {
			s.ip = offset
		}
		return false, nil
	}
}

var (
	jmpHandler   = jumpOp("JMP", func(*State) bool { return true })
	jmpEqHandler = jumpOp("JMP_EQ", func(s *State) bool { return s.Registers[register.EQ] != 0 })
	jmpGtHandler = jumpOp("JMP_GT", func(s *State) bool { return s.Registers[register.GT] != 0 })
	jmpLtHandler = jumpOp("JMP_LT", func(s *State) bool { return s.Registers[register.LT] != 0 })
	jmpNeHandler = jumpOp("JMP_NE", func(s *State) bool { return s.Registers[register.NE] != 0 })
)

// labelHandler runs during normal execution, after the pre-pass has already
// populated the label table. It is idempotent: if the table somehow lacks
// this label's offset it records it, otherwise it is a pure no-op besides
// the dispatch loop's +12 advance.
func labelHandler(s *State, rec bytecode.Record) (bool, error) {
	if _, ok := s.labelOffset(rec.Payload1); !ok {
		s.setLabelOffset(rec.Payload1, s.ip)
	}
	return false, nil
}

func nopHandler(*State, bytecode.Record) (bool, error) {
	return false, nil
}
