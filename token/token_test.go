package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdentifierKeyword(t *testing.T) {
	assert.Equal(t, Type("MOV"), LookupIdentifier("MOV"))
	assert.Equal(t, Type("JMP_EQ"), LookupIdentifier("JMP_EQ"))
}

func TestLookupIdentifierPlain(t *testing.T) {
	assert.Equal(t, IDENT, LookupIdentifier("r1"))
	assert.Equal(t, IDENT, LookupIdentifier("loop"))
}

func TestIsMnemonic(t *testing.T) {
	assert.True(t, IsMnemonic(Type("ADD")))
	assert.False(t, IsMnemonic(IDENT))
	assert.False(t, IsMnemonic(Type("r1")))
}
