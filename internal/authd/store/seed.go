package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/harborbank/authd/internal/authd/domain"
	"github.com/harborbank/authd/pkg/idx"
)

// SeedClient is a client registration as it appears in the seed file. The
// secret is stored hashed; the file never carries plaintext secrets.
type SeedClient struct {
	ID         string `json:"client_id"`
	Name       string `json:"name"`
	SecretHash string `json:"client_secret_hash"`
}

// SeedUser is an account holder record as it appears in the seed file.
type SeedUser struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	PasswordHash  string `json:"password_hash"`
	AccountNumber string `json:"account_number"`
	Balance       int64  `json:"balance"`
}

// SeedFile is the startup snapshot of both registries.
type SeedFile struct {
	Clients []SeedClient `json:"clients"`
	Users   []SeedUser   `json:"users"`
}

// LoadSeedFile reads and decodes a seed file from disk.
func LoadSeedFile(path string) (SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SeedFile{}, fmt.Errorf("store: read seed file: %w", err)
	}

	var seed SeedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return SeedFile{}, fmt.Errorf("store: decode seed file: %w", err)
	}
	return seed, nil
}

// Validate checks every record carries the fields lookups depend on.
func (s SeedFile) Validate() error {
	for i, c := range s.Clients {
		if c.ID == "" || c.SecretHash == "" {
			return fmt.Errorf("store: seed client %d missing client_id or client_secret_hash", i)
		}
	}
	for i, u := range s.Users {
		if u.Username == "" || u.PasswordHash == "" {
			return fmt.Errorf("store: seed user %d missing username or password_hash", i)
		}
	}
	return nil
}

// Seed loads the snapshot into an empty store. A store that already holds
// records is left untouched so restarts are idempotent.
func Seed(ctx context.Context, st Store, seed SeedFile) error {
	if err := seed.Validate(); err != nil {
		return err
	}

	emptyUsers, err := st.Users().IsEmpty(ctx)
	if err != nil {
		return err
	}
	emptyClients, err := st.Clients().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !emptyUsers || !emptyClients {
		return nil
	}

	for _, c := range seed.Clients {
		if err := st.Clients().CreateClient(ctx, domain.Client{
			ID:         c.ID,
			Name:       c.Name,
			SecretHash: c.SecretHash,
		}); err != nil {
			return fmt.Errorf("store: seed client %q: %w", c.ID, err)
		}
	}

	for _, u := range seed.Users {
		id := u.ID
		if id == "" {
			id = idx.New().String()
		}
		if err := st.Users().CreateUser(ctx, domain.User{
			ID:            id,
			Username:      u.Username,
			PasswordHash:  u.PasswordHash,
			AccountNumber: u.AccountNumber,
			Balance:       u.Balance,
		}); err != nil {
			return fmt.Errorf("store: seed user %q: %w", u.Username, err)
		}
	}

	return nil
}
