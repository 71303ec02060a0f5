package domain

import "time"

// User is an account holder (resource owner). Records are read-only for this
// service; balance mutation belongs to another system.
type User struct {
	ID            string
	Username      string
	PasswordHash  string // argon2id encoded
	AccountNumber string
	Balance       int64 // minor currency units (cents)
	CreatedAt     time.Time
}
