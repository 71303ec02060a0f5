package authsdk

// TokenResponse is returned by the client-credential and account-holder
// issuance endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "Bearer"
	ExpiresIn   int    `json:"expires_in"` // seconds until expiry
}

// ConsentResponse is returned by the consent exchange endpoint.
type ConsentResponse struct {
	ConsentToken string   `json:"consent_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	Scopes       []string `json:"scopes"`
}

// BalanceResponse is the protected account balance payload. Balance is in
// minor currency units (cents).
type BalanceResponse struct {
	AccountNumber string `json:"account_number"`
	Balance       int64  `json:"balance"`
}

// ErrorResponse mirrors the JSON body of an APIError.
type ErrorResponse struct {
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

// HealthChecks reports the state of critical dependencies on /readyz.
type HealthChecks struct {
	Store string `json:"store"`
	Codec string `json:"codec"`
}

// HealthResponse is returned by the health probe endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
