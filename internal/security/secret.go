package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateSecret returns 32 random bytes for CSRF token signing.
func GenerateSecret() ([]byte, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}
	return secret, nil
}

// DecodeSecret interprets a configured secret string: hex when it decodes
// cleanly, raw bytes otherwise.
func DecodeSecret(raw string) []byte {
	if decoded, err := hex.DecodeString(raw); err == nil {
		return decoded
	}
	return []byte(raw)
}
