// Package file implements store.Store as an in-memory snapshot loaded from a
// JSON seed file at startup. It is the default driver: both registries are
// read-only, so a map held for the process lifetime is all the flows need.
package file

import (
	"context"

	"github.com/harborbank/authd/internal/authd/domain"
	"github.com/harborbank/authd/internal/authd/store"
	"github.com/harborbank/authd/pkg/idx"
)

type Store struct {
	usersByID       map[string]domain.User
	usersByUsername map[string]domain.User
	clientsByID     map[string]domain.Client
}

// NewStore loads the snapshot at path into memory.
func NewStore(path string) (*Store, error) {
	seed, err := store.LoadSeedFile(path)
	if err != nil {
		return nil, err
	}
	return NewStoreFromSeed(seed)
}

// NewStoreFromSeed builds the snapshot from an already-decoded seed. Useful
// in tests.
func NewStoreFromSeed(seed store.SeedFile) (*Store, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		usersByID:       make(map[string]domain.User, len(seed.Users)),
		usersByUsername: make(map[string]domain.User, len(seed.Users)),
		clientsByID:     make(map[string]domain.Client, len(seed.Clients)),
	}

	for _, c := range seed.Clients {
		s.clientsByID[c.ID] = domain.Client{
			ID:         c.ID,
			Name:       c.Name,
			SecretHash: c.SecretHash,
		}
	}
	for _, u := range seed.Users {
		id := u.ID
		if id == "" {
			id = idx.New().String()
		}
		user := domain.User{
			ID:            id,
			Username:      u.Username,
			PasswordHash:  u.PasswordHash,
			AccountNumber: u.AccountNumber,
			Balance:       u.Balance,
		}
		s.usersByID[user.ID] = user
		s.usersByUsername[user.Username] = user
	}

	return s, nil
}

func (s *Store) Users() store.Users     { return &usersRepo{s: s} }
func (s *Store) Clients() store.Clients { return &clientsRepo{s: s} }

func (s *Store) Ping(ctx context.Context) error { return nil }
func (s *Store) Close() error                   { return nil }

type usersRepo struct {
	s *Store
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, ok := r.s.usersByID[id]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	u, ok := r.s.usersByUsername[username]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	if _, ok := r.s.usersByID[u.ID]; ok {
		return store.ErrAlreadyExists
	}
	if _, ok := r.s.usersByUsername[u.Username]; ok {
		return store.ErrAlreadyExists
	}
	r.s.usersByID[u.ID] = u
	r.s.usersByUsername[u.Username] = u
	return nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	return len(r.s.usersByID) == 0, nil
}

type clientsRepo struct {
	s *Store
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	c, ok := r.s.clientsByID[id]
	if !ok {
		return domain.Client{}, store.ErrNotFound
	}
	return c, nil
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	if _, ok := r.s.clientsByID[c.ID]; ok {
		return store.ErrAlreadyExists
	}
	r.s.clientsByID[c.ID] = c
	return nil
}

func (r *clientsRepo) IsEmpty(ctx context.Context) (bool, error) {
	return len(r.s.clientsByID) == 0, nil
}
