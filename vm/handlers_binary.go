package vm

import (
	"fmt"

	"github.com/Cdayz/simple-lang/bytecode"
)

// binFunc combines a binary handler's left and right operand values into the
// value written back to the left (destination) operand.
type binFunc func(left, right int64) (int64, error)

// binaryOp is the generator the source uses for every ADD/SUB/MUL/DIV/AND/
// OR/XOR/MOV/NOT handler: read the right operand in any of the three
// read-modes, read-and-validate the left operand as a writable destination,
// combine them with f, and write the result back to the left operand.
func binaryOp(mnemonic string, f binFunc) handler {
	return func(s *State, rec bytecode.Record) (bool, error) {
		right, err := s.readValue(rec.Mode2, rec.Payload2)
		if err != nil {
			return false, fmt.Errorf("%s: %w", mnemonic, err)
		}

		left, err := s.readLeft(rec.Mode1, rec.Payload1)
		if err != nil {
			return false, fmt.Errorf("%s: %w", mnemonic, err)
		}

		result, err := f(left, right)
		if err != nil {
			return false, fmt.Errorf("%s: %w", mnemonic, err)
		}

		if err := s.writeValue(rec.Mode1, rec.Payload1, result); err != nil {
			return false, fmt.Errorf("%s: %w", mnemonic, err)
		}

		return false, nil
	}
}

// readLeft reads operand 1 for a binary handler. Operand 1 must double as
// the write destination, so only the two writable modes are legal here —
// unlike readValue, an in-place immediate is rejected (CMP is the one
// mnemonic that reads its left operand without that restriction; it has its
// own handler in handlers_cmp.go).
func (s *State) readLeft(mode bytecode.OperandMode, payload int32) (int64, error) {
	switch mode {
	case bytecode.ModeRegister, bytecode.ModeRegisterPointer:
		return s.readValue(mode, payload)
	default:
		return 0, &BadArgumentError{Detail: "left operand must be a register or register pointer"}
	}
}

var (
	addHandler = binaryOp("ADD", func(l, r int64) (int64, error) { return l + r, nil })
	subHandler = binaryOp("SUB", func(l, r int64) (int64, error) { return l - r, nil })
	mulHandler = binaryOp("MUL", func(l, r int64) (int64, error) { return l * r, nil })
	divHandler = binaryOp("DIV", func(l, r int64) (int64, error) {
		if r == 0 {
			return 0, &DivideByZeroError{}
		}
		return l / r, nil
	})
	andHandler = binaryOp("AND", func(l, r int64) (int64, error) { return l & r, nil })
	orHandler  = binaryOp("OR", func(l, r int64) (int64, error) { return l | r, nil })
	xorHandler = binaryOp("XOR", func(l, r int64) (int64, error) { return l ^ r, nil })
	movHandler = binaryOp("MOV", func(_, r int64) (int64, error) { return r, nil })
	notHandler = binaryOp("NOT", func(_, r int64) (int64, error) { return ^r, nil })
)
