package domain

import "time"

// Client is a registered third-party application. Registrations are loaded
// at process start and never mutated at runtime.
type Client struct {
	ID         string
	Name       string
	SecretHash string // argon2id encoded
	CreatedAt  time.Time
}
