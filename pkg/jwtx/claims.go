package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/harborbank/authd/pkg/idx"
)

// Fixed TTLs for the short-lived token classes. The client token TTL is
// configurable per deployment; these two are not.
const (
	// UserTokenTTL is the lifetime of a user session token.
	UserTokenTTL = 15 * time.Minute

	// ConsentTokenTTL is the lifetime of a delegated consent token. It is
	// an absolute cap applied regardless of the remaining validity of the
	// user token it was exchanged for.
	ConsentTokenTTL = 10 * time.Minute
)

// Claims is the single claim set shared by every token class. Which of the
// custom fields are populated determines the class; see Kind.
type Claims struct {
	jwt.RegisteredClaims

	// ClientID identifies the third-party application a client token was
	// issued to. Only set on client tokens.
	ClientID string `json:"client_id,omitempty"`

	// Scopes are the capability grants carried by a consent token. Only set
	// on consent tokens; a user token never carries scopes.
	Scopes []string `json:"scopes,omitempty"`
}

// NewClientClaims builds the claim set for a client-credential token.
func NewClientClaims(clientID, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: registered(issuer, "", ttl, now),
		ClientID:         clientID,
	}
}

// NewUserClaims builds the claim set for a user session token.
func NewUserClaims(userID, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: registered(issuer, userID, UserTokenTTL, now),
	}
}

// NewConsentClaims builds the claim set for a delegated consent token.
func NewConsentClaims(userID string, scopes []string, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: registered(issuer, userID, ConsentTokenTTL, now),
		Scopes:           scopes,
	}
}

func registered(issuer, subject string, ttl time.Duration, now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        idx.New().String(),
	}
}

// HasScopes reports whether every scope in required is present in the claim
// set. An empty required set is trivially satisfied.
func (c Claims) HasScopes(required []string) bool {
	granted := make(map[string]struct{}, len(c.Scopes))
	for _, s := range c.Scopes {
		granted[s] = struct{}{}
	}
	for _, r := range required {
		if _, ok := granted[r]; !ok {
			return false
		}
	}
	return true
}
