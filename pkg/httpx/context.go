package httpx

import (
	"context"

	"github.com/harborbank/authd/pkg/jwtx"
)

type ctxKey string

const (
	ctxKeyUserID ctxKey = "user_id"
	ctxKeyScopes ctxKey = "scopes"
	ctxKeyClaims ctxKey = "claims"
)

// ContextWithConsent binds the verified consent claims to the context. Only
// the scope guard calls this; handlers must never accept a user id from any
// other source.
func ContextWithConsent(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, ctxKeyScopes, c.Scopes)
	ctx = context.WithValue(ctx, ctxKeyClaims, c)
	return ctx
}

// UserIDFromContext returns the consent token subject, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKeyUserID).(string)
	return id, ok && id != ""
}

// ScopesFromContext returns the granted scopes bound by the scope guard.
func ScopesFromContext(ctx context.Context) []string {
	if v, ok := ctx.Value(ctxKeyScopes).([]string); ok {
		return v
	}
	return nil
}
