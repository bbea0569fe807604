// Package token contains the list of token types produced by the lexer while
// scanning a source program.
package token

import "github.com/Cdayz/simple-lang/opcode"

type Type string

// Token is a single lexed unit: its type and the literal text it came from.
type Token struct {
	Type    Type
	Literal string
}

// structural token types
const (
	COMMA   Type = "COMMA"
	AT      Type = "AT"
	INT     Type = "INT"
	IDENT   Type = "IDENT"
	EOF     Type = "EOF"
	ILLEGAL Type = "ILLEGAL"
)

// mnemonics is the keyword table: a hand-written copy of the opcode
// package's canonical mnemonic strings, checked against that dictionary in
// init.
var mnemonics = map[string]Type{
	"ADD": "ADD", "SUB": "SUB", "MUL": "MUL", "DIV": "DIV",
	"AND": "AND", "OR": "OR", "XOR": "XOR", "MOV": "MOV", "CMP": "CMP",
	"NOT": "NOT", "JMP": "JMP", "JMP_EQ": "JMP_EQ", "JMP_GT": "JMP_GT",
	"JMP_LT": "JMP_LT", "JMP_NE": "JMP_NE", "LABEL": "LABEL",
	"PRINT": "PRINT", "INPUT": "INPUT", "CALL": "CALL",
	"NOP": "NOP", "END": "END", "RET": "RET",
}

func init() {
	// Fail loudly at package init, not at first lexed program, if the
	// keyword table names a mnemonic the opcode dictionary does not know.
	// An opcode missing from the keyword table is not detected here.
	for name := range mnemonics {
		if _, ok := opcode.Lookup(name); !ok {
			panic("token: mnemonic " + name + " missing from opcode dictionary")
		}
	}
}

// LookupIdentifier classifies an identifier as a mnemonic keyword or plain
// IDENT (a register name or label reference, resolved later by the parser).
func LookupIdentifier(ident string) Type {
	if tok, ok := mnemonics[ident]; ok {
		return tok
	}
	return IDENT
}

// IsMnemonic reports whether t names one of the language's instructions.
func IsMnemonic(t Type) bool {
	_, ok := mnemonics[string(t)]
	return ok
}
