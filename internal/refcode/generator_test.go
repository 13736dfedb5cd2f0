package refcode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLengthAndAlphabet(t *testing.T) {
	g := New(8)
	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		require.Len(t, code, 8)
		require.NoError(t, Valid(code))
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 490)
}

func TestGenerateSkipsBiasedBytes(t *testing.T) {
	// 255 is above the unbiased limit and must be skipped.
	src := bytes.NewReader([]byte{255, 0, 255, 1, 2, 3})
	code, err := New(3, WithRandom(src)).Generate()
	require.NoError(t, err)
	assert.Equal(t, "ABC", code)
}

func TestGenerateEntropyFailure(t *testing.T) {
	_, err := New(4, WithRandom(strings.NewReader("ab"))).Generate()
	assert.Error(t, err)
}

func TestDefaultLength(t *testing.T) {
	code, err := New(0).Generate()
	require.NoError(t, err)
	assert.Len(t, code, DefaultLength)
}

func TestValid(t *testing.T) {
	assert.NoError(t, Valid("ABCD2345"))
	assert.Error(t, Valid(""))
	assert.Error(t, Valid("abcd"))
	assert.Error(t, Valid("O0I1"))
}
