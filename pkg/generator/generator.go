package generator

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// TokenSize is the number of random bytes behind a session token (256 bits).
const TokenSize = 32

// GenerateToken returns size random bytes encoded as unpadded URL-safe base64.
func GenerateToken(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generator: failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
