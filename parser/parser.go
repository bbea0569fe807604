// Package parser turns source text into a list of Operations, resolving
// symbolic label names to small integer indices as it goes.
package parser

import (
	"strconv"
	"strings"

	"github.com/Cdayz/simple-lang/opcode"
	"github.com/Cdayz/simple-lang/register"
)

// Parser parses a whole source program into a slice of Operations. A Parser
// is not safe for concurrent or repeated use across unrelated sources: its
// label table is scoped to a single Parse call's lifetime conceptually, but
// is held on the struct so callers can inspect Labels() afterward.
type Parser struct {
	labels map[string]int
}

// New creates a Parser with an empty label table.
func New() *Parser {
	return &Parser{labels: make(map[string]int)}
}

// Labels returns the label-name to label-index table this Parser has built.
// Parse adds to the table without resetting it, so after several Parse calls
// it holds the labels of all of them.
func (p *Parser) Labels() map[string]int {
	return p.labels
}

// Parse scans code line by line, producing one Operation per non-empty,
// non-comment line. The first failure is wrapped in a *ParsingError carrying
// the failing line's index and text.
func (p *Parser) Parse(code string) ([]Operation, error) {
	var operations []Operation

	for lineIndex, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimLeft(line, " \t\r")
		if idx := strings.IndexByte(trimmed, ';'); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		trimmed = strings.TrimRight(trimmed, " \t\r")

		if trimmed == "" {
			continue
		}

		op, err := p.parseLine(trimmed)
		if err != nil {
			return nil, &ParsingError{LineIndex: lineIndex, Line: line, Cause: err}
		}

		operations = append(operations, op)
	}

	return operations, nil
}

// parseLine parses a single non-empty, comment-stripped line into an
// Operation.
func (p *Parser) parseLine(line string) (Operation, error) {
	withoutCommas := strings.ReplaceAll(line, ",", "")
	fields := strings.Fields(withoutCommas)

	if len(fields) == 0 {
		return Operation{}, &BadOperationIdentifierError{Mnemonic: ""}
	}

	mnemonic := fields[0]
	args := fields[1:]

	code, ok := opcode.Lookup(mnemonic)
	if !ok {
		return Operation{}, &BadOperationIdentifierError{Mnemonic: mnemonic}
	}
	opType := opcode.TypeOf(code)

	switch opType {
	case opcode.Nop:
		return Operation{Mnemonic: mnemonic, OpType: opType, Args: [2]Operand{NopOperand, NopOperand}}, nil

	case opcode.Unary:
		if len(args) < 1 {
			return Operation{}, &BadOperationArgumentError{Argument: ""}
		}
		arg, err := p.parseArgument(args[0], opcode.IsLabelOperand(code))
		if err != nil {
			return Operation{}, err
		}

		// NOT is parsed as unary but both operand slots are bound to the
		// same value so the binary handler table can service it directly.
		if code == opcode.NOT {
			return Operation{Mnemonic: mnemonic, OpType: opType, Args: [2]Operand{arg, arg}}, nil
		}

		return Operation{Mnemonic: mnemonic, OpType: opType, Args: [2]Operand{arg, NopOperand}}, nil

	default: // opcode.Binary
		if len(args) < 2 {
			return Operation{}, &BadOperationArgumentError{Argument: strings.Join(args, "")}
		}
		first, err := p.parseArgument(args[0], opcode.IsLabelOperand(code))
		if err != nil {
			return Operation{}, err
		}
		second, err := p.parseArgument(args[1], opcode.IsLabelOperand(code))
		if err != nil {
			return Operation{}, err
		}

		return Operation{Mnemonic: mnemonic, OpType: opType, Args: [2]Operand{first, second}}, nil
	}
}

// parseArgument classifies a single operand token. isLabelContext reports
// whether the enclosing mnemonic permits a bare identifier to name a label.
func (p *Parser) parseArgument(arg string, isLabelContext bool) (Operand, error) {
	isPointer := strings.HasPrefix(arg, "@")
	name := strings.TrimPrefix(arg, "@")

	if idx, ok := register.Lookup(name); ok {
		if isPointer {
			return Operand{Mode: ModeRegisterPointer, Payload: int32(idx)}, nil
		}
		return Operand{Mode: ModeRegister, Payload: int32(idx)}, nil
	}

	if isInPlace(arg) {
		v, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return Operand{}, &BadInPlaceValueError{Argument: arg}
		}
		return Operand{Mode: ModeInPlaceValue, Payload: int32(v)}, nil
	}

	if isLabelContext && isValidIdentifier(arg) {
		return Operand{Mode: ModeLabel, Payload: int32(p.labelIndex(arg))}, nil
	}

	return Operand{}, &BadOperationArgumentError{Argument: arg}
}

// labelIndex returns the label's index, assigning a fresh one (starting at 1,
// so index 0 stays reserved) the first time a name is seen.
func (p *Parser) labelIndex(name string) int {
	if idx, ok := p.labels[name]; ok {
		return idx
	}

	idx := len(p.labels) + 1
	p.labels[name] = idx
	return idx
}

// isInPlace reports whether arg is all decimal digits. No sign character is
// permitted: Python's str.isdigit/isdecimal (what the original parser this
// was distilled from is built on) are both false for a leading '-' or '+',
// so a signed token falls through to the label/identifier checks instead.
func isInPlace(arg string) bool {
	if arg == "" {
		return false
	}
	for i := 0; i < len(arg); i++ {
		if arg[i] < '0' || arg[i] > '9' {
			return false
		}
	}
	return true
}

func isValidIdentifier(arg string) bool {
	if arg == "" {
		return false
	}
	if arg[0] >= '0' && arg[0] <= '9' {
		return false
	}
	return !strings.ContainsAny(arg, " \t\r\n,@")
}
