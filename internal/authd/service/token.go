package service

import (
	"context"
	"errors"
	"time"

	"github.com/harborbank/authd/internal/authd/domain"
	"github.com/harborbank/authd/internal/authd/store"
	"github.com/harborbank/authd/pkg/cryptox"
	"github.com/harborbank/authd/pkg/jwtx"
	"github.com/harborbank/authd/pkg/slogx"
)

var (
	ErrInvalidClientCredentials = errors.New("invalid_client_credentials")
	ErrInvalidCredentials       = errors.New("invalid_credentials")
	ErrInvalidUserToken         = errors.New("invalid_user_token")
	ErrUserNotFound             = errors.New("user_not_found")
)

// TokenService runs the three issuance flows. Every flow either completes or
// fails within one request; nothing about an issued token is retained.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Store    store.Store

	Issuer string

	// ClientTokenTTL is the configured lifetime of client-credential tokens.
	// User and consent token lifetimes are fixed in jwtx.
	ClientTokenTTL time.Duration
}

// IssueClientToken authenticates a third-party application by its
// id/secret pair and mints a client token. This token authenticates the
// application on every subsequent third-party-facing call, never a human.
func (s *TokenService) IssueClientToken(
	ctx context.Context,
	clientID, clientSecret string,
) (*domain.IssuedToken, error) {
	now := time.Now()
	l := slogx.FromContext(ctx)

	client, err := s.Store.Clients().GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn the hash cost anyway so a registry miss is not
			// observable by timing.
			cryptox.DummyVerify(clientSecret)
			return nil, ErrInvalidClientCredentials
		}
		return nil, err
	}

	if err := cryptox.VerifyPassword(clientSecret, client.SecretHash); err != nil {
		l.Info("client secret verification failed", "client_id", clientID)
		return nil, ErrInvalidClientCredentials
	}

	claims := jwtx.NewClientClaims(client.ID, s.Issuer, s.ClientTokenTTL, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		l.Error("failed to sign client token", "error", err)
		return nil, err
	}

	return &domain.IssuedToken{Token: token, ExpiresIn: s.ClientTokenTTL}, nil
}

// IssueUserToken authenticates an account holder by username/password and
// mints a 15-minute user session token. The token states only "this human is
// who they say they are"; it grants no resource access by itself.
func (s *TokenService) IssueUserToken(
	ctx context.Context,
	username, password string,
) (*domain.IssuedToken, error) {
	now := time.Now()
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			cryptox.DummyVerify(password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("account holder authentication failed", "username", username)
		return nil, ErrInvalidCredentials
	}

	claims := jwtx.NewUserClaims(user.ID, s.Issuer, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		l.Error("failed to sign user token", "error", err)
		return nil, err
	}

	return &domain.IssuedToken{Token: token, ExpiresIn: jwtx.UserTokenTTL}, nil
}

// IssueConsentToken exchanges a verified user token for a narrower consent
// token. The granted scope set is fixed server-side at issuance; a scope
// claim presented by the caller is never trusted. The 10-minute cap applies
// regardless of the user token's remaining validity.
func (s *TokenService) IssueConsentToken(
	ctx context.Context,
	userToken string,
) (*domain.IssuedToken, error) {
	now := time.Now()
	l := slogx.FromContext(ctx)

	claims, err := s.Verifier.Verify(userToken)
	if err != nil {
		l.Info("consent exchange with unverifiable user token", "err", err)
		return nil, ErrInvalidUserToken
	}
	if claims.Kind() != jwtx.KindUser {
		l.Warn("consent exchange with wrong token class", "kind", claims.Kind().String())
		return nil, ErrInvalidUserToken
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	scopes := domain.ConsentScopes()
	consent := jwtx.NewConsentClaims(user.ID, scopes, s.Issuer, now)
	token, err := s.Signer.Sign(consent)
	if err != nil {
		l.Error("failed to sign consent token", "error", err)
		return nil, err
	}

	return &domain.IssuedToken{
		Token:     token,
		ExpiresIn: jwtx.ConsentTokenTTL,
		Scopes:    scopes,
	}, nil
}
