package vm

import (
	"github.com/Cdayz/simple-lang/bytecode"
)

// readValue resolves an operand for reading: a register's contents, the
// memory cell addressed by a register's contents, or an immediate.
func (s *State) readValue(mode bytecode.OperandMode, payload int32) (int64, error) {
	switch mode {
	case bytecode.ModeRegister:
		idx, err := s.checkRegister(payload)
		if err != nil {
			return 0, err
		}
		return s.Registers[idx], nil

	case bytecode.ModeRegisterPointer:
		idx, err := s.checkRegister(payload)
		if err != nil {
			return 0, err
		}
		addr, err := s.checkMemory(s.Registers[idx])
		if err != nil {
			return 0, err
		}
		return s.Memory[addr], nil

	case bytecode.ModeInPlaceValue:
		return int64(payload), nil

	default:
		return 0, &BadArgumentError{Detail: "operand is not readable"}
	}
}

// writeValue resolves an operand for writing: either a register or the
// memory cell addressed by a register. Any other mode is illegal as a write
// destination.
func (s *State) writeValue(mode bytecode.OperandMode, payload int32, value int64) error {
	switch mode {
	case bytecode.ModeRegister:
		idx, err := s.checkRegister(payload)
		if err != nil {
			return err
		}
		s.Registers[idx] = value
		return nil

	case bytecode.ModeRegisterPointer:
		idx, err := s.checkRegister(payload)
		if err != nil {
			return err
		}
		addr, err := s.checkMemory(s.Registers[idx])
		if err != nil {
			return err
		}
		s.Memory[addr] = value
		return nil

	default:
		return &BadArgumentError{Detail: "operand is not a writable destination"}
	}
}

func (s *State) checkRegister(payload int32) (int32, error) {
	if payload < 0 || int(payload) >= len(s.Registers) {
		return 0, &RegisterOutOfRangeError{Index: payload}
	}
	return payload, nil
}

func (s *State) checkMemory(addr int64) (int64, error) {
	if addr < 0 || addr >= MemSize {
		return 0, &MemoryOutOfRangeError{Address: addr}
	}
	return addr, nil
}
