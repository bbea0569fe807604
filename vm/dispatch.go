package vm

import (
	"github.com/Cdayz/simple-lang/bytecode"
	"github.com/Cdayz/simple-lang/opcode"
)

// handler executes one decoded record against s. jumped reports whether the
// handler already set s.ip to its final value for this step — when true, the
// executor's usual +12 advance is skipped.
type handler func(s *State, rec bytecode.Record) (jumped bool, err error)

// table maps every opcode to its handler, indexed directly by opcode.Code so
// dispatch is a slice lookup rather than a switch.
var table [int(opcode.RET) + 1]handler

func init() {
	table[opcode.ADD] = addHandler
	table[opcode.SUB] = subHandler
	table[opcode.MUL] = mulHandler
	table[opcode.DIV] = divHandler
	table[opcode.AND] = andHandler
	table[opcode.OR] = orHandler
	table[opcode.XOR] = xorHandler
	table[opcode.MOV] = movHandler
	table[opcode.CMP] = cmpHandler

	table[opcode.NOT] = notHandler
	table[opcode.JMP] = jmpHandler
	table[opcode.JMP_EQ] = jmpEqHandler
	table[opcode.JMP_GT] = jmpGtHandler
	table[opcode.JMP_LT] = jmpLtHandler
	table[opcode.JMP_NE] = jmpNeHandler
	table[opcode.LABEL] = labelHandler
	table[opcode.PRINT] = printHandler
	table[opcode.INPUT] = inputHandler
	table[opcode.CALL] = callHandler

	table[opcode.NOP] = nopHandler
	table[opcode.END] = endHandler
	table[opcode.RET] = retHandler
}
