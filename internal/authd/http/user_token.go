package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/harborbank/authd/internal/authd/service"
	"github.com/harborbank/authd/pkg/authsdk"
	"github.com/harborbank/authd/pkg/httpx"
	"github.com/harborbank/authd/pkg/slogx"
)

// UserTokenHandler serves POST /v1/auth/account-holder: the resource-owner
// issuance flow. The route is client-gated, so credentials are only ever
// exchanged in the context of an authenticated application.
type UserTokenHandler struct {
	TokenService *service.TokenService
}

func (h *UserTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	form, ok := parseForm(w, r)
	if !ok {
		return
	}

	username := strings.TrimSpace(form.Get("username"))
	password := form.Get("password")
	if username == "" || password == "" {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	issued, err := h.TokenService.IssueUserToken(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			authsdk.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("user token issuance failed", "err", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{
		AccessToken: issued.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(issued.ExpiresIn.Seconds()),
	})
}
