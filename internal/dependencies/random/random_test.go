package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringUsesAlphabet(t *testing.T) {
	r := New()
	const alphabet = "abc123"

	for range 50 {
		s := r.String(12, alphabet)
		assert.Len(t, s, 12)
		for _, c := range s {
			assert.True(t, strings.ContainsRune(alphabet, c), "unexpected %q", c)
		}
	}
}

func TestStringDegenerateInputs(t *testing.T) {
	r := New()
	assert.Empty(t, r.String(0, "abc"))
	assert.Empty(t, r.String(-1, "abc"))
	assert.Empty(t, r.String(5, ""))
}

func TestIntnBounds(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
	for range 100 {
		v := r.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}
