package derive

import (
	"fmt"

	"github.com/awnumar/memguard"
	"github.com/jmcleod/vaultphrase/internal/util"
	"github.com/jmcleod/vaultphrase/wordlist"
)

// Session owns the master key for the duration of one invocation. The key is
// held in a memguard Enclave (encrypted at rest in memory) and every
// intermediate buffer — the root phrase, the normalized secret, the raw
// master key, each child key — is wiped on every exit path.
//
// Wiping is best-effort: the runtime may still retain copies via garbage
// collection, paging or swap. It raises attacker work factor; it is not a
// hard guarantee.
type Session struct {
	scheme    Scheme
	master    *memguard.Enclave
	strength  Strength
	destroyed bool
}

// NewSession normalizes the root phrase and derives the master key under the
// given scheme and parameters. It takes ownership of rootPhrase and wipes it
// before returning, whether derivation succeeds or fails.
func NewSession(rootPhrase []byte, scheme Scheme, params Argon2idParams) (*Session, error) {
	defer util.WipeBytes(rootPhrase)

	normalized, err := Normalize(rootPhrase)
	if err != nil {
		return nil, err
	}
	defer util.WipeBytes(normalized)

	strength := Classify(normalized)

	master, err := DeriveMasterKey(normalized, scheme.Salt, params)
	if err != nil {
		return nil, fmt.Errorf("deriving master key: %w", err)
	}

	// NewEnclave seals the key and wipes the source buffer.
	return &Session{
		scheme:   scheme,
		master:   memguard.NewEnclave(master),
		strength: strength,
	}, nil
}

// Passphrase derives the child key for label and encodes it as a passphrase
// of wordCount words from the wordlist. The child key is wiped before
// returning, on success and on failure.
func (s *Session) Passphrase(label Label, wl *wordlist.Wordlist, wordCount int, delimiter string) (string, error) {
	if s.destroyed {
		return "", ErrSessionDestroyed
	}

	buf, err := s.master.Open()
	if err != nil {
		return "", fmt.Errorf("opening master key enclave: %w", err)
	}
	defer buf.Destroy()

	child, err := DeriveChildKey(buf.Bytes(), label)
	if err != nil {
		return "", err
	}
	defer util.WipeBytes(child)

	return Encode(child, wl, wordCount, delimiter)
}

// Strength reports the advisory classification of the normalized root phrase.
func (s *Session) Strength() Strength {
	return s.strength
}

// Scheme returns the derivation scheme this session was created under.
func (s *Session) Scheme() Scheme {
	return s.scheme
}

// Destroy drops the sealed master key. Safe to call multiple times; further
// Passphrase calls return ErrSessionDestroyed.
func (s *Session) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.master = nil
}
