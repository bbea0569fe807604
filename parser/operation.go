package parser

import "github.com/Cdayz/simple-lang/opcode"

// OperandMode is the parse-time tag for how an operand's payload should be
// interpreted. It is a distinct numbering from bytecode.OperandMode (the
// wire-format tag written by the encoder) — the two enumerations describe the
// same five concepts but do not share numeric values, and code must never
// assume otherwise.
type OperandMode int

const (
	ModeNop OperandMode = iota
	ModeRegister
	ModeRegisterPointer
	ModeInPlaceValue
	ModeLabel
)

func (m OperandMode) String() string {
	switch m {
	case ModeNop:
		return "Nop"
	case ModeRegister:
		return "Register"
	case ModeRegisterPointer:
		return "RegisterPointer"
	case ModeInPlaceValue:
		return "InPlaceValue"
	case ModeLabel:
		return "Label"
	default:
		return "unknown operand mode"
	}
}

// Operand is a single parsed argument: how to interpret Payload, and the
// payload itself (a register index, a memory address held in a register, an
// immediate value, or a label index).
type Operand struct {
	Mode    OperandMode
	Payload int32
}

// NopOperand fills the unused operand slot of a nop-arity or unary operation.
var NopOperand = Operand{Mode: ModeNop, Payload: 0}

// Operation is one parsed source line: a mnemonic, its arity class, and
// exactly two operand slots (unused slots carry NopOperand).
type Operation struct {
	Mnemonic string
	OpType   opcode.Type
	Args     [2]Operand
}
