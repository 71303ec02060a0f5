package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// OAuth2-style error codes carried in the "error" field.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeInvalidClient     = "invalid_client"
	ErrorCodeInvalidGrant      = "invalid_grant"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInsufficientScope = "insufficient_scope"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeServerError       = "server_error"
)

// APIError is the JSON error envelope every failure surfaces as. It
// implements error so the SDK client can return it directly. Descriptions
// are deliberately generic: a bad signature and a past expiry share one
// message so callers cannot probe which check rejected them.
type APIError struct {
	// StatusCode is the HTTP status this error is written with.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Description is a human-readable, intentionally coarse description.
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes the error as a JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest covers malformed or incomplete request bodies.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidClientCredentials is returned when client_id/client_secret
	// authentication fails.
	ErrInvalidClientCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidClient,
		Description: "invalid client credentials",
	}

	// ErrMissingClientToken is returned when the Client-Authorization header
	// is absent on a client-gated route.
	ErrMissingClientToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidClient,
		Description: "missing client application token",
	}

	// ErrInvalidClientToken covers an unverifiable or expired client token.
	ErrInvalidClientToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidClient,
		Description: "invalid or expired client application token",
	}

	// ErrInvalidCredentials is returned when account-holder authentication
	// fails; unknown username and wrong password are not distinguished.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidGrant,
		Description: "invalid username or password",
	}

	// ErrInvalidUserToken is returned by the consent flow when the presented
	// user token does not verify.
	ErrInvalidUserToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidGrant,
		Description: "invalid or expired user token",
	}

	// ErrUserNotFound is returned by the consent flow when the token subject
	// no longer resolves in the directory.
	ErrUserNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "user not found",
	}

	// ErrMissingAuthorization is returned when the Authorization header is
	// absent on a scope-gated route.
	ErrMissingAuthorization = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "missing authorization header",
	}

	// ErrInvalidOrExpiredToken covers every verification failure of a
	// consent bearer token.
	ErrInvalidOrExpiredToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "invalid or expired token",
	}

	// ErrInsufficientScope is the one failure kept distinct from an invalid
	// token: the caller is legitimate but underprivileged.
	ErrInsufficientScope = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeInsufficientScope,
		Description: "insufficient permissions",
	}

	// ErrServerError is the catch-all for unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)
