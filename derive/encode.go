package derive

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/jmcleod/vaultphrase/internal/util"
	"github.com/jmcleod/vaultphrase/wordlist"
)

// MaxWordCount bounds the number of words in a single passphrase.
const MaxWordCount = 128

// blockStream expands a child key into an arbitrarily long pseudorandom
// stream via counter-mode re-hashing: block k is SHA256(key || uint32_be(k)).
// Blocks are indexed by position, so the stream is restartable and has no
// hidden cursor beyond the counter. This expansion is uniformity plumbing,
// not a second line of brute-force defense.
type blockStream struct {
	key     []byte
	counter uint32
	block   []byte
	off     int
}

func newBlockStream(key []byte) *blockStream {
	return &blockStream{key: key}
}

// next32 returns the next big-endian uint32 draw from the stream.
func (s *blockStream) next32() uint32 {
	if s.off+4 > len(s.block) {
		h := sha256.New()
		h.Write(s.key)
		var ctr [4]byte
		binary.BigEndian.PutUint32(ctr[:], s.counter)
		h.Write(ctr[:])
		s.block = h.Sum(s.block[:0])
		s.counter++
		s.off = 0
	}
	v := binary.BigEndian.Uint32(s.block[s.off:])
	s.off += 4
	return v
}

func (s *blockStream) wipe() {
	util.WipeBytes(s.block)
}

// sampleIndex draws a uniformly distributed index in [0, n) by rejection
// sampling: 32-bit draws at or above the largest multiple of n below 2^32
// are discarded, so no modulo bias is introduced when n is not a power of
// two. The accept/reject sequence is part of the V1 contract.
func (s *blockStream) sampleIndex(n int) int {
	bound := (uint64(1) << 32) / uint64(n) * uint64(n)
	for {
		v := s.next32()
		if uint64(v) < bound {
			return int(v % uint32(n))
		}
	}
}

// Encode expands a child key into wordCount words drawn uniformly from the
// wordlist, joined by delimiter in selection order. Duplicate words across
// positions are allowed. Identical inputs always produce an identical
// passphrase.
func Encode(key []byte, wl *wordlist.Wordlist, wordCount int, delimiter string) (string, error) {
	if len(key) == 0 {
		return "", fmt.Errorf("encoding passphrase: %w", ErrEmptyInput)
	}
	if wordCount < 1 || wordCount > MaxWordCount {
		return "", fmt.Errorf("word count %d outside [1, %d]: %w", wordCount, MaxWordCount, ErrInvalidWordCount)
	}

	stream := newBlockStream(key)
	defer stream.wipe()

	var b strings.Builder
	for i := 0; i < wordCount; i++ {
		if i > 0 {
			b.WriteString(delimiter)
		}
		b.WriteString(wl.Word(stream.sampleIndex(wl.Size())))
	}
	return b.String(), nil
}
