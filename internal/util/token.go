package util

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomToken returns n cryptographically random bytes hex-encoded.
// Session identifiers use n=24 (192 bits of entropy).
func RandomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
