package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	idx, ok := Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, A, idx)

	_, ok = Lookup("r9")
	assert.False(t, ok)
}

func TestCount(t *testing.T) {
	assert.Equal(t, Index(9), Count)
}

func TestStringRoundTrip(t *testing.T) {
	for _, idx := range []Index{R1, R2, R3, R4, A, EQ, LT, GT, NE} {
		name := idx.String()
		got, ok := Lookup(name)
		assert.True(t, ok)
		assert.Equal(t, idx, got)
	}
}

func TestStringOfOutOfRange(t *testing.T) {
	assert.Equal(t, "invalid register", Index(-1).String())
	assert.Equal(t, "invalid register", Count.String())
}
