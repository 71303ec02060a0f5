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

// ConsentHandler serves POST /v1/consent: exchanges a user token for a
// delegated consent token. Client-gated; only a registered application may
// request delegation on a user's behalf.
type ConsentHandler struct {
	TokenService *service.TokenService
}

func (h *ConsentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	form, ok := parseForm(w, r)
	if !ok {
		return
	}

	userToken := strings.TrimSpace(form.Get("user_token"))
	if userToken == "" {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	issued, err := h.TokenService.IssueConsentToken(ctx, userToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUserToken):
			authsdk.ErrInvalidUserToken.WriteError(w)
		case errors.Is(err, service.ErrUserNotFound):
			authsdk.ErrUserNotFound.WriteError(w)
		default:
			log.Error("consent issuance failed", "err", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.ConsentResponse{
		ConsentToken: issued.Token,
		TokenType:    "Bearer",
		ExpiresIn:    int(issued.ExpiresIn.Seconds()),
		Scopes:       issued.Scopes,
	})
}
