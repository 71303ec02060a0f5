package httpx

import (
	"encoding/json"
	"net/http"
	"strings"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Required for responses carrying tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// BearerToken extracts the token from a "Bearer <token>" header value.
// Returns the empty string when the value is absent or not bearer-shaped.
func BearerToken(headerValue string) string {
	if !strings.HasPrefix(headerValue, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(headerValue, "Bearer"))
}
