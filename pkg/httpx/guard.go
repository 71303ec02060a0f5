package httpx

import (
	"net/http"

	"github.com/harborbank/authd/pkg/authsdk"
	"github.com/harborbank/authd/pkg/jwtx"
	"github.com/harborbank/authd/pkg/slogx"
)

// Guard is one capability check in an authorization gate chain. It either
// admits the request, possibly with values bound into the context, or
// rejects it with the error to write. Guards never call the next handler
// themselves; Protect composes them so the ordering is statically visible at
// the route declaration.
type Guard func(r *http.Request) (*http.Request, *authsdk.APIError)

// Protect runs guards in declaration order, stopping at the first rejection,
// then serves next.
func Protect(next http.Handler, guards ...Guard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, guard := range guards {
			admitted, apiErr := guard(r)
			if apiErr != nil {
				apiErr.WriteError(w)
				return
			}
			r = admitted
		}
		next.ServeHTTP(w, r)
	})
}

// ClientAuthenticated requires a valid client token in the distinguished
// Client-Authorization header. It gates access only: nothing beyond "caller
// is a known application" is bound into the context.
func ClientAuthenticated(v jwtx.Verifier) Guard {
	return func(r *http.Request) (*http.Request, *authsdk.APIError) {
		log := slogx.FromContext(r.Context())

		raw := BearerToken(r.Header.Get(authsdk.HeaderClientAuthorization))
		if raw == "" {
			return nil, authsdk.ErrMissingClientToken
		}

		claims, err := v.Verify(raw)
		if err != nil {
			log.Warn("client token verification failed", "err", err)
			return nil, authsdk.ErrInvalidClientToken
		}
		if claims.Kind() != jwtx.KindClient {
			log.Warn("non-client token presented on client channel", "kind", claims.Kind().String())
			return nil, authsdk.ErrInvalidClientToken
		}

		return r, nil
	}
}

// ScopeAuthorized requires a consent token in the Authorization header whose
// granted scopes cover every required scope. A bare user token never
// satisfies a non-empty requirement: only the consent class carries grants.
// On success the token subject and scopes are bound into the context.
func ScopeAuthorized(v jwtx.Verifier, required ...string) Guard {
	return func(r *http.Request) (*http.Request, *authsdk.APIError) {
		log := slogx.FromContext(r.Context())

		raw := BearerToken(r.Header.Get(authsdk.HeaderAuthorization))
		if raw == "" {
			return nil, authsdk.ErrMissingAuthorization
		}

		claims, err := v.Verify(raw)
		if err != nil {
			log.Warn("consent token verification failed", "err", err)
			return nil, authsdk.ErrInvalidOrExpiredToken
		}

		if claims.Kind() != jwtx.KindConsent {
			if len(required) == 0 {
				// Nothing to enforce; still refuse non-consent classes on
				// this channel.
				return nil, authsdk.ErrInvalidOrExpiredToken
			}
			return nil, authsdk.ErrInsufficientScope
		}
		if !claims.HasScopes(required) {
			return nil, authsdk.ErrInsufficientScope
		}

		return r.WithContext(ContextWithConsent(r.Context(), claims)), nil
	}
}
