package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/harborbank/authd/internal/authd/service"
	"github.com/harborbank/authd/pkg/authsdk"
	"github.com/harborbank/authd/pkg/httpx"
	"github.com/harborbank/authd/pkg/slogx"
)

// ClientTokenHandler serves POST /v1/auth/client: the client-credential
// issuance flow. Accepts application/x-www-form-urlencoded.
type ClientTokenHandler struct {
	TokenService *service.TokenService
}

func (h *ClientTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	form, ok := parseForm(w, r)
	if !ok {
		return
	}

	clientID := strings.TrimSpace(form.Get("client_id"))
	clientSecret := form.Get("client_secret")
	if clientID == "" || clientSecret == "" {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	issued, err := h.TokenService.IssueClientToken(ctx, clientID, clientSecret)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidClientCredentials):
			authsdk.ErrInvalidClientCredentials.WriteError(w)
		default:
			log.Error("client token issuance failed", "err", err)
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

// parseForm enforces the form content type and parses the body, writing the
// rejection itself when either fails.
func parseForm(w http.ResponseWriter, r *http.Request) (url.Values, bool) {
	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		authsdk.ErrInvalidRequest.WriteError(w)
		return nil, false
	}
	if err := r.ParseForm(); err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return nil, false
	}
	return r.Form, true
}
