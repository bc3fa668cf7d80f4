// Package wordlist loads and validates the word table used as the encoding
// alphabet for derived passphrases.
package wordlist

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmcleod/vaultphrase/internal/util"
)

var (
	// ErrEmptyWordlist indicates the source contained no words.
	ErrEmptyWordlist = errors.New("wordlist is empty")
	// ErrDuplicateWord indicates the source contains repeated words.
	ErrDuplicateWord = errors.New("wordlist contains duplicate words")
	// ErrWordlistSize indicates the wordlist is too small to encode anything.
	ErrWordlistSize = errors.New("wordlist too small")
)

// Wordlist is an ordered, deduplicated table of words. Insertion order is
// index order; the indices are the encoding alphabet. Immutable after load.
type Wordlist struct {
	name        string
	words       []string
	fingerprint string
}

// Load reads a wordlist file and validates it. Lines hold either a bare word
// or an "index<TAB>word" pair (the last whitespace-separated field is taken);
// blank lines and #-comments are ignored. The fingerprint is the SHA-256 of
// the raw file bytes, so users can verify it against a published checksum
// before trusting any derived output.
func Load(path string) (*Wordlist, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading wordlist: %w", err)
	}

	sum := sha256.Sum256(raw)

	words, err := parse(raw)
	if err != nil {
		return nil, err
	}

	return &Wordlist{
		name:        filepath.Base(path),
		words:       words,
		fingerprint: util.HexEncode(sum[:]),
	}, nil
}

func parse(raw []byte) ([]string, error) {
	var words []string
	seen := make(map[string]struct{})
	duplicates := 0

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		word := fields[len(fields)-1]
		if _, ok := seen[word]; ok {
			duplicates++
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning wordlist: %w", err)
	}

	// Error text carries counts only, never the words themselves.
	if duplicates > 0 {
		return nil, fmt.Errorf("wordlist has %d duplicate words: %w", duplicates, ErrDuplicateWord)
	}
	if len(words) == 0 {
		return nil, ErrEmptyWordlist
	}
	if len(words) < 2 {
		return nil, fmt.Errorf("wordlist has %d words, need at least 2: %w", len(words), ErrWordlistSize)
	}
	return words, nil
}

// Name returns the display name of the wordlist source.
func (w *Wordlist) Name() string {
	return w.name
}

// Size returns the number of words.
func (w *Wordlist) Size() int {
	return len(w.words)
}

// Word returns the word at index i.
func (w *Wordlist) Word(i int) string {
	return w.words[i]
}

// Fingerprint returns the hex SHA-256 fingerprint of the source.
func (w *Wordlist) Fingerprint() string {
	return w.fingerprint
}
