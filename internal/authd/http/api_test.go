package http_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpapi "github.com/harborbank/authd/internal/authd/http"
	"github.com/harborbank/authd/internal/authd/service"
	"github.com/harborbank/authd/internal/authd/store"
	filedriver "github.com/harborbank/authd/internal/authd/store/drivers/file"
	"github.com/harborbank/authd/pkg/authsdk"
	"github.com/harborbank/authd/pkg/cryptox"
	"github.com/harborbank/authd/pkg/jwtx"
)

const testIssuer = "authd-test"

var testKey = []byte("0123456789abcdef0123456789abcdef")

type testServer struct {
	server *httptest.Server
	sdk    *authsdk.Client
	signer *jwtx.HS256Signer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	secretHash, err := cryptox.HashPassword("s3cret")
	require.NoError(t, err)
	passwordHash, err := cryptox.HashPassword("password123")
	require.NoError(t, err)

	st, err := filedriver.NewStoreFromSeed(store.SeedFile{
		Clients: []store.SeedClient{
			{ID: "app1", Name: "Example App", SecretHash: secretHash},
		},
		Users: []store.SeedUser{
			{
				ID:            "user-1",
				Username:      "alice",
				PasswordHash:  passwordHash,
				AccountNumber: "123456789",
				Balance:       104250,
			},
		},
	})
	require.NoError(t, err)

	signer, err := jwtx.NewSignerHS256(testKey)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testKey, testIssuer)
	require.NoError(t, err)

	tokenService := &service.TokenService{
		Signer:         signer,
		Verifier:       verifier,
		Store:          st,
		Issuer:         testIssuer,
		ClientTokenTTL: time.Hour,
	}

	router := httpapi.NewRouter(verifier, "test", st, slog.Default())
	router.TokenService = tokenService
	router.UserService = &service.UserService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testServer{
		server: server,
		sdk:    authsdk.NewClient(server.URL),
		signer: signer,
	}
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

func TestFullDelegationFlow(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ctx := context.Background()

	// 1. The application authenticates itself.
	clientTok, err := ts.sdk.ClientToken(ctx, "app1", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "Bearer", clientTok.TokenType)
	require.Equal(t, 3600, clientTok.ExpiresIn)
	require.NotEmpty(t, clientTok.AccessToken)

	// 2. The account holder authenticates through the application.
	userTok, err := ts.sdk.AccountHolderToken(ctx, clientTok.AccessToken, "alice", "password123")
	require.NoError(t, err)
	require.Equal(t, 15*60, userTok.ExpiresIn)

	// 3. The user token is exchanged for a scoped consent token.
	consent, err := ts.sdk.Consent(ctx, clientTok.AccessToken, userTok.AccessToken)
	require.NoError(t, err)
	require.Equal(t, 10*60, consent.ExpiresIn)
	require.ElementsMatch(t, []string{"read_balance", "transfer_funds"}, consent.Scopes)

	// 4. The consent token unlocks the protected resource.
	balance, err := ts.sdk.Balance(ctx, clientTok.AccessToken, consent.ConsentToken)
	require.NoError(t, err)
	require.Equal(t, "123456789", balance.AccountNumber)
	require.Equal(t, int64(104250), balance.Balance)
}

func TestClientTokenEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ctx := context.Background()

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ts.sdk.ClientToken(ctx, "app1", "wrong")
		requireAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidClient)
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := ts.sdk.ClientToken(ctx, "ghost", "s3cret")
		requireAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidClient)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := ts.sdk.ClientToken(ctx, "", "")
		requireAPIError(t, err, http.StatusBadRequest, authsdk.ErrorCodeInvalidRequest)
	})
}

func TestAccountHolderEndpointRequiresClientToken(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ctx := context.Background()

	t.Run("no client token", func(t *testing.T) {
		_, err := ts.sdk.AccountHolderToken(ctx, "", "alice", "password123")
		requireAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidClient)
	})

	t.Run("garbage client token", func(t *testing.T) {
		_, err := ts.sdk.AccountHolderToken(ctx, "bogus", "alice", "password123")
		requireAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidClient)
	})

	t.Run("wrong password", func(t *testing.T) {
		clientTok, err := ts.sdk.ClientToken(ctx, "app1", "s3cret")
		require.NoError(t, err)

		_, err = ts.sdk.AccountHolderToken(ctx, clientTok.AccessToken, "alice", "wrong-password")
		requireAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidGrant)
	})
}

func TestConsentEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ctx := context.Background()

	clientTok, err := ts.sdk.ClientToken(ctx, "app1", "s3cret")
	require.NoError(t, err)

	t.Run("invalid user token", func(t *testing.T) {
		_, err := ts.sdk.Consent(ctx, clientTok.AccessToken, "not-a-token")
		requireAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidGrant)
	})

	t.Run("unknown subject", func(t *testing.T) {
		ghost, err := ts.signer.Sign(jwtx.NewUserClaims("ghost", testIssuer, time.Now()))
		require.NoError(t, err)

		_, err = ts.sdk.Consent(ctx, clientTok.AccessToken, ghost)
		requireAPIError(t, err, http.StatusNotFound, authsdk.ErrorCodeNotFound)
	})

	t.Run("requires client token", func(t *testing.T) {
		userTok, err := ts.sdk.AccountHolderToken(ctx, clientTok.AccessToken, "alice", "password123")
		require.NoError(t, err)

		_, err = ts.sdk.Consent(ctx, "", userTok.AccessToken)
		requireAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidClient)
	})
}

func TestBalanceEndpointGates(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ctx := context.Background()

	clientTok, err := ts.sdk.ClientToken(ctx, "app1", "s3cret")
	require.NoError(t, err)

	userTok, err := ts.sdk.AccountHolderToken(ctx, clientTok.AccessToken, "alice", "password123")
	require.NoError(t, err)

	consent, err := ts.sdk.Consent(ctx, clientTok.AccessToken, userTok.AccessToken)
	require.NoError(t, err)

	t.Run("consent token without client token", func(t *testing.T) {
		_, err := ts.sdk.Balance(ctx, "", consent.ConsentToken)
		requireAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidClient)
	})

	t.Run("client token without consent token", func(t *testing.T) {
		_, err := ts.sdk.Balance(ctx, clientTok.AccessToken, "")
		requireAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidToken)
	})

	t.Run("user token in place of consent token", func(t *testing.T) {
		_, err := ts.sdk.Balance(ctx, clientTok.AccessToken, userTok.AccessToken)
		requireAPIError(t, err, http.StatusForbidden, authsdk.ErrorCodeInsufficientScope)
	})

	t.Run("consent token lacking the required scope", func(t *testing.T) {
		narrow, err := ts.signer.Sign(
			jwtx.NewConsentClaims("user-1", []string{"transfer_funds"}, testIssuer, time.Now()),
		)
		require.NoError(t, err)

		_, err = ts.sdk.Balance(ctx, clientTok.AccessToken, narrow)
		requireAPIError(t, err, http.StatusForbidden, authsdk.ErrorCodeInsufficientScope)
	})

	t.Run("expired consent token", func(t *testing.T) {
		stale, err := ts.signer.Sign(
			jwtx.NewConsentClaims("user-1", []string{"read_balance"}, testIssuer, time.Now().Add(-time.Hour)),
		)
		require.NoError(t, err)

		_, err = ts.sdk.Balance(ctx, clientTok.AccessToken, stale)
		requireAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidToken)
	})
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	for _, path := range []string{"/livez", "/readyz"} {
		resp, err := http.Get(ts.server.URL + path)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NoError(t, resp.Body.Close())
	}
}

func TestErrorsAreGeneric(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ctx := context.Background()

	// A bad signature and a past expiry must surface identically.
	otherSigner, err := jwtx.NewSignerHS256([]byte("ffffffffffffffffffffffffffffffff"))
	require.NoError(t, err)

	forged, err := otherSigner.Sign(
		jwtx.NewConsentClaims("user-1", []string{"read_balance"}, testIssuer, time.Now()),
	)
	require.NoError(t, err)

	clientTok, err := ts.sdk.ClientToken(ctx, "app1", "s3cret")
	require.NoError(t, err)

	expired, err := ts.signer.Sign(
		jwtx.NewConsentClaims("user-1", []string{"read_balance"}, testIssuer, time.Now().Add(-time.Hour)),
	)
	require.NoError(t, err)

	_, errForged := ts.sdk.Balance(ctx, clientTok.AccessToken, forged)
	_, errExpired := ts.sdk.Balance(ctx, clientTok.AccessToken, expired)

	var apiForged, apiExpired *authsdk.APIError
	require.True(t, errors.As(errForged, &apiForged))
	require.True(t, errors.As(errExpired, &apiExpired))
	require.Equal(t, apiForged.Code, apiExpired.Code)
	require.Equal(t, apiForged.Description, apiExpired.Description)
}
