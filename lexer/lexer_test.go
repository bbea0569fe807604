package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Cdayz/simple-lang/token"
)

func TestNextTokenSimpleInstruction(t *testing.T) {
	input := "MOV r1, 5"

	expected := []token.Token{
		{Type: "MOV", Literal: "MOV"},
		{Type: token.IDENT, Literal: "r1"},
		{Type: token.COMMA, Literal: ","},
		{Type: token.INT, Literal: "5"},
		{Type: token.EOF, Literal: ""},
	}

	l := New(input)
	for _, want := range expected {
		assert.Equal(t, want, l.NextToken())
	}
}

func TestNextTokenRegisterPointer(t *testing.T) {
	l := New("MOV @r1, r2")

	assert.Equal(t, token.Token{Type: "MOV", Literal: "MOV"}, l.NextToken())
	assert.Equal(t, token.Token{Type: token.AT, Literal: "@"}, l.NextToken())
	assert.Equal(t, token.Token{Type: token.IDENT, Literal: "r1"}, l.NextToken())
}

func TestNextTokenSkipsComments(t *testing.T) {
	l := New("; a full line comment\nADD r1, r2, r3 ; trailing")

	assert.Equal(t, token.Token{Type: "ADD", Literal: "ADD"}, l.NextToken())
}

func TestNextTokenIllegalNumber(t *testing.T) {
	l := New("123abc")

	tok := l.NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Type)
	assert.Equal(t, "123abc", tok.Literal)
}

func TestNextTokenLabelDefinition(t *testing.T) {
	l := New("LABEL loop")

	assert.Equal(t, token.Token{Type: "LABEL", Literal: "LABEL"}, l.NextToken())
	assert.Equal(t, token.Token{Type: token.IDENT, Literal: "loop"}, l.NextToken())
}
