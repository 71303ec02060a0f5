package store

import (
	"context"
	"errors"

	"github.com/harborbank/authd/internal/authd/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface behind the client registry and the
// resource owner directory. Both registries are immutable after the startup
// load, so concurrent reads need no synchronization; the create methods exist
// only for load-time seeding. Concrete drivers (file snapshot, sqlite)
// implement this so the backing store is swappable without touching
// authorization logic.
type Store interface {
	Users() Users
	Clients() Clients

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

type Users interface {
	// GetUserByID resolves a token subject to an account holder.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during account-holder authentication.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a user record. Startup seeding only.
	CreateUser(ctx context.Context, u domain.User) error

	// IsEmpty reports whether the directory holds no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Clients interface {
	// GetClientByID fetches a registered application.
	GetClientByID(ctx context.Context, id string) (domain.Client, error)

	// CreateClient inserts a client registration. Startup seeding only.
	CreateClient(ctx context.Context, c domain.Client) error

	// IsEmpty reports whether the registry holds no clients.
	IsEmpty(ctx context.Context) (bool, error)
}
