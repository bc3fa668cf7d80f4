package wordlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	wl := Builtin()

	require.Equal(t, 2048, wl.Size())
	assert.Equal(t, "abandon", wl.Word(0))
	assert.Equal(t, "zoo", wl.Word(2047))
	assert.Len(t, wl.Fingerprint(), 64)
}

func TestBuiltin_UniqueWords(t *testing.T) {
	wl := Builtin()
	seen := make(map[string]struct{}, wl.Size())
	for i := 0; i < wl.Size(); i++ {
		word := wl.Word(i)
		_, dup := seen[word]
		require.False(t, dup, "duplicate word at index %d", i)
		seen[word] = struct{}{}
	}
}

func TestBuiltin_StableFingerprint(t *testing.T) {
	assert.Equal(t, Builtin().Fingerprint(), Builtin().Fingerprint())
}
