package wordlist

import (
	"crypto/sha256"

	"github.com/jmcleod/vaultphrase/internal/util"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// Builtin returns the compiled-in BIP-39 English wordlist (2048 words), used
// when no wordlist file is given. Its fingerprint hashes the newline-joined
// words, since there is no source file to hash.
func Builtin() *Wordlist {
	words := wordlists.English
	h := sha256.New()
	for _, w := range words {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return &Wordlist{
		name:        "builtin (BIP-39 English)",
		words:       words,
		fingerprint: util.HexEncode(h.Sum(nil)),
	}
}
