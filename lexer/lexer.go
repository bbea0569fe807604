// Package lexer turns source text into a stream of tokens for the parser to
// consume. It reads one rune at a time, the way a hand-written assembler
// lexer typically does: no regular expressions, no backtracking.
package lexer

import "github.com/Cdayz/simple-lang/token"

// Lexer is a lexer for the assembly source language.
type Lexer struct {
	pos        int    // current character position
	nextPos    int    // next character position
	char       rune   // current character
	characters []rune // rune slice of input string
}

// New creates a Lexer instance from string input.
func New(input string) *Lexer {
	l := &Lexer{characters: []rune(input)}
	// prime the pump
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.nextPos >= len(l.characters) {
		l.char = rune(0)
	} else {
		l.char = l.characters[l.nextPos]
	}
	l.pos = l.nextPos
	l.nextPos++
}

// NextToken reads the next token, skipping whitespace and comments.
func (l *Lexer) NextToken() token.Token {
	var tok token.Token
	l.skipWhitespace()

	if l.char == ';' {
		l.skipComment()
		return l.NextToken()
	}

	switch l.char {
	case ',':
		tok = newToken(token.COMMA, l.char)
	case '@':
		tok = newToken(token.AT, l.char)
	case rune(0):
		tok.Type = token.EOF
		tok.Literal = ""
	default:
		if isDigit(l.char) {
			return l.readDecimal()
		}

		tok.Literal = l.readIdentifier()
		tok.Type = token.LookupIdentifier(tok.Literal)
		return tok
	}

	l.readChar()
	return tok
}

func newToken(typ token.Type, char rune) token.Token {
	return token.Token{
		Type:    typ,
		Literal: string(char),
	}
}

func (l *Lexer) skipWhitespace() {
	for isWhiteSpace(l.char) {
		l.readChar()
	}
}

func (l *Lexer) skipComment() {
	for l.char != '\n' && l.char != rune(0) {
		l.readChar()
	}
}

func (l *Lexer) readUntilWhitespace() string {
	pos := l.pos
	for !isWhiteSpace(l.char) && l.char != rune(0) {
		l.readChar()
	}
	return string(l.characters[pos:l.pos])
}

func (l *Lexer) readDecimal() token.Token {
	integer := l.readNumber()
	if isWhiteSpace(l.char) || l.char == rune(0) || l.char == ',' {
		return token.Token{Type: token.INT, Literal: integer}
	}

	illegalPart := l.readUntilWhitespace()
	return token.Token{Type: token.ILLEGAL, Literal: integer + illegalPart}
}

func (l *Lexer) readNumber() string {
	pos := l.pos
	for isDigit(l.char) {
		l.readChar()
	}
	return string(l.characters[pos:l.pos])
}

func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for isIdentifier(l.char) {
		l.readChar()
	}
	return string(l.characters[pos:l.pos])
}

func isWhiteSpace(char rune) bool {
	return char == ' ' || char == '\n' || char == '\t' || char == '\r'
}

func isIdentifier(char rune) bool {
	return char != ',' && char != '@' && !isWhiteSpace(char) && char != rune(0)
}

func isDigit(char rune) bool {
	return '0' <= char && char <= '9'
}
