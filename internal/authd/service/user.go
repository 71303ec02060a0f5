package service

import (
	"context"

	"github.com/harborbank/authd/internal/authd/domain"
	"github.com/harborbank/authd/internal/authd/store"
)

// UserService exposes directory reads to the protected resource handlers.
type UserService struct {
	Store store.Store
}

// GetUserByID fetches an account holder by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
