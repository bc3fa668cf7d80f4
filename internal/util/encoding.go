package util

import "encoding/hex"

func HexEncode(b []byte) string {
	return hex.EncodeToString(b)
}
