package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinKeyLength is the minimum accepted HMAC key length in bytes. Anything
// shorter than the HS256 block size weakens the MAC.
const MinKeyLength = 32

// ErrShortKey reports a signing key below the minimum length.
var ErrShortKey = errors.New("jwtx: signing key shorter than 32 bytes")

// Signer signs a claim set into a compact token string.
type Signer interface {
	Sign(Claims) (string, error)
}

// HS256Signer signs tokens with HMAC-SHA256 against a single shared key.
type HS256Signer struct {
	key []byte
}

// NewSignerHS256 creates an HS256 signer. The key is held for the process
// lifetime and must never be logged or serialized.
func NewSignerHS256(key []byte) (*HS256Signer, error) {
	if len(key) < MinKeyLength {
		return nil, ErrShortKey
	}
	return &HS256Signer{key: key}, nil
}

// Sign turns the claims into a signed compact JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.key)
}
