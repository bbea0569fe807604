package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cdayz/simple-lang/opcode"
	"github.com/Cdayz/simple-lang/register"
)

func TestParseBinaryOperandOrder(t *testing.T) {
	ops, err := New().Parse("MOV A, 1")
	require.NoError(t, err)
	require.Len(t, ops, 1)

	op := ops[0]
	assert.Equal(t, "MOV", op.Mnemonic)
	assert.Equal(t, Operand{Mode: ModeRegister, Payload: int32(register.A)}, op.Args[0])
	assert.Equal(t, Operand{Mode: ModeInPlaceValue, Payload: 1}, op.Args[1])
}

func TestParseRegisterPointer(t *testing.T) {
	ops, err := New().Parse("MOV @r1, r2")
	require.NoError(t, err)

	assert.Equal(t, Operand{Mode: ModeRegisterPointer, Payload: int32(register.R1)}, ops[0].Args[0])
	assert.Equal(t, Operand{Mode: ModeRegister, Payload: int32(register.R2)}, ops[0].Args[1])
}

func TestParseUnaryDuplicatesOperandForNot(t *testing.T) {
	ops, err := New().Parse("NOT r1")
	require.NoError(t, err)

	assert.Equal(t, ops[0].Args[0], ops[0].Args[1])
	assert.Equal(t, Operand{Mode: ModeRegister, Payload: int32(register.R1)}, ops[0].Args[0])
}

func TestParseNopTakesNoOperands(t *testing.T) {
	ops, err := New().Parse("END")
	require.NoError(t, err)
	assert.Equal(t, [2]Operand{NopOperand, NopOperand}, ops[0].Args)
}

func TestParseForwardLabelReference(t *testing.T) {
	ops, err := New().Parse("JMP loop\nLABEL loop\nEND")
	require.NoError(t, err)

	jmp := ops[0]
	label := ops[1]
	assert.Equal(t, ModeLabel, jmp.Args[0].Mode)
	assert.Equal(t, jmp.Args[0].Payload, label.Args[0].Payload)
	assert.Equal(t, int32(1), jmp.Args[0].Payload)
}

func TestParseCallSharesLabelTableWithJumps(t *testing.T) {
	pp := New()
	ops, err := pp.Parse("CALL sub\nEND\nLABEL sub\nJMP sub\nRET")
	require.NoError(t, err)

	call := ops[0]
	label := ops[2]
	jmp := ops[3]
	assert.Equal(t, call.Args[0].Payload, label.Args[0].Payload)
	assert.Equal(t, label.Args[0].Payload, jmp.Args[0].Payload)
}

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	ops, err := New().Parse("\n; comment only\n   \nEND ; trailing comment\n")
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "END", ops[0].Mnemonic)
}

func TestParseUnknownMnemonic(t *testing.T) {
	_, err := New().Parse("FROB r1, r2")
	require.Error(t, err)

	var parseErr *ParsingError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 0, parseErr.LineIndex)

	var idErr *BadOperationIdentifierError
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, "FROB", idErr.Mnemonic)
}

func TestParseMissingOperand(t *testing.T) {
	_, err := New().Parse("MOV r1")
	require.Error(t, err)

	var argErr *BadOperationArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestParseBadInPlaceValue(t *testing.T) {
	// All decimal digits, but outside the signed 32-bit payload range.
	_, err := New().Parse("CMP r1, 99999999999")
	require.Error(t, err)

	var valErr *BadInPlaceValueError
	assert.ErrorAs(t, err, &valErr)
}

func TestParseReportsLineIndexOfFailure(t *testing.T) {
	_, err := New().Parse("MOV r1, 1\nMOV r2, 2\nBOGUS r3")
	require.Error(t, err)

	var parseErr *ParsingError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.LineIndex)
}

func TestLabelsExposesBuiltTable(t *testing.T) {
	p := New()
	_, err := p.Parse("LABEL start\nJMP start")
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"start": 1}, p.Labels())
}

func TestOperationTypeMatchesOpcode(t *testing.T) {
	ops, err := New().Parse("ADD r1, r2")
	require.NoError(t, err)
	assert.Equal(t, opcode.Binary, ops[0].OpType)
}

func TestParseCommaOnlyLineFailsCleanly(t *testing.T) {
	// The line is non-empty before comma-stripping, so Parse's blank-line
	// check at the top of the loop does not skip it; after stripping commas
	// strings.Fields yields zero fields, which must not panic.
	_, err := New().Parse(",")
	require.Error(t, err)

	var idErr *BadOperationIdentifierError
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, "", idErr.Mnemonic)
}

func TestParseSignedLiteralIsRejected(t *testing.T) {
	// Neither "-5" nor "+5" is all decimal digits, so in a non-label context
	// this must fail rather than silently parsing as an in-place value.
	_, err := New().Parse("MOV r1, -5")
	require.Error(t, err)

	var argErr *BadOperationArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "-5", argErr.Argument)
}
