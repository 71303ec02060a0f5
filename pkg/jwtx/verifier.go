package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is the only failure a Verifier surfaces. Malformed
// encoding, a wrong algorithm, a bad signature and a past expiry all collapse
// into it so callers cannot probe which check rejected the token. The
// underlying cause stays wrapped for internal logging.
var ErrTokenInvalid = errors.New("jwtx: invalid token")

// Verifier validates a compact token string and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256Verifier validates HS256 tokens against the shared signing key.
// The HMAC comparison inside golang-jwt is constant time.
type HS256Verifier struct {
	key    []byte
	issuer string
}

// NewVerifierHS256 creates a verifier bound to the shared key. A non-empty
// issuer is enforced against the iss claim.
func NewVerifierHS256(key []byte, issuer string) (*HS256Verifier, error) {
	if len(key) < MinKeyLength {
		return nil, ErrShortKey
	}
	return &HS256Verifier{key: key, issuer: issuer}, nil
}

// Verify parses and validates the token string. Expiry and not-before are
// checked by the parser against the wall clock.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return Claims{}, fmt.Errorf("%w: issuer mismatch", ErrTokenInvalid)
	}

	return *claims, nil
}
