package derive

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

// ChildKeyLength is the size of every derived child key.
const ChildKeyLength = 32

// DeriveChildKey derives a 32-byte child key as HMAC-SHA256 over the label
// bytes keyed with the master key. For a fixed master key, distinct labels
// yield computationally independent keys.
func DeriveChildKey(master []byte, label Label) ([]byte, error) {
	if len(master) == 0 {
		return nil, fmt.Errorf("deriving child key: %w", ErrEmptyInput)
	}
	mac := hmac.New(sha256.New, master)
	mac.Write(label.Bytes())
	return mac.Sum(nil)[:ChildKeyLength], nil
}
