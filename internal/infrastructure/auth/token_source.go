package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/karthikc1125/simple-login/domain"
)

// TokenSourceImpl implements domain.TokenSource with crypto/rand tokens.
// Tokens are opaque: 32 random bytes, hex-encoded.
type TokenSourceImpl struct{}

// NewTokenSource creates a new token source
func NewTokenSource() domain.TokenSource {
	return &TokenSourceImpl{}
}

// Mint implements domain.TokenSource
func (t *TokenSourceImpl) Mint() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
