package domain

import "time"

// Scopes a consent token may carry. The grant set is fixed at issuance by
// the server; a scope requested by the caller is never trusted.
const (
	ScopeReadBalance   = "read_balance"
	ScopeTransferFunds = "transfer_funds"
)

// ConsentScopes returns the scope set granted on every consent exchange.
func ConsentScopes() []string {
	return []string{ScopeReadBalance, ScopeTransferFunds}
}

// IssuedToken is what an issuance flow returns: the opaque bearer string and
// its lifetime. The server keeps no record of it afterwards.
type IssuedToken struct {
	Token     string
	ExpiresIn time.Duration
	Scopes    []string // set only on consent tokens
}
