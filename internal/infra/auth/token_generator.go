package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/service"
	"github.com/IbrahimMurad/alx-files-manager/internal/errors"
)

const tokenBytes = 32

// randomTokenGenerator issues URL-safe tokens from crypto/rand and stores them by SHA-256 digest.
type randomTokenGenerator struct{}

// NewTokenGenerator is the constructor for randomTokenGenerator.
func NewTokenGenerator() service.TokenGenerator {
	return &randomTokenGenerator{}
}

// Generate returns 32 random bytes encoded as unpadded URL-safe base64.
func (g *randomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Hash returns the hex encoded SHA-256 digest of token.
func (g *randomTokenGenerator) Hash(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
