package derive

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// DeriveMasterKey derives the 32-byte master key from a normalized secret
// using Argon2id with the scheme's fixed public salt. The result depends
// only on the secret, salt and parameters — never on time, environment or
// randomness. Under production parameters this call is deliberately slow
// and memory-hard.
func DeriveMasterKey(secret, salt []byte, params Argon2idParams) ([]byte, error) {
	if len(secret) == 0 {
		return nil, ErrEmptyInput
	}
	if params.KeyLen != 32 {
		return nil, fmt.Errorf("argon2id key length must be 32 bytes")
	}
	key := argon2.IDKey(secret, salt, params.Time, params.MemoryKiB, params.Parallelism, params.KeyLen)
	return key, nil
}
