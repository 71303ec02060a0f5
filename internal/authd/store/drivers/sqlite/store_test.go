package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harborbank/authd/internal/authd/domain"
	"github.com/harborbank/authd/internal/authd/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "authd_test.db")
	st, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
}

func TestClientsRepo(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	empty, err := st.Clients().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	_, err = st.Clients().GetClientByID(ctx, "app1")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Clients().CreateClient(ctx, domain.Client{
		ID:         "app1",
		Name:       "Example App",
		SecretHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
	}))

	empty, err = st.Clients().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)

	got, err := st.Clients().GetClientByID(ctx, "app1")
	require.NoError(t, err)
	require.Equal(t, "app1", got.ID)
	require.Equal(t, "Example App", got.Name)
	require.NotEmpty(t, got.SecretHash)
	require.False(t, got.CreatedAt.IsZero())
}

func TestUsersRepo(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	_, err = st.Users().GetUserByUsername(ctx, "alice")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Users().CreateUser(ctx, domain.User{
		ID:            "user-1",
		Username:      "alice",
		PasswordHash:  "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		AccountNumber: "123456789",
		Balance:       104250,
	}))

	t.Run("lookup by id", func(t *testing.T) {
		got, err := st.Users().GetUserByID(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, "alice", got.Username)
		require.Equal(t, int64(104250), got.Balance)
		require.False(t, got.CreatedAt.IsZero())
	})

	t.Run("lookup by username", func(t *testing.T) {
		got, err := st.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, "user-1", got.ID)
		require.Equal(t, "123456789", got.AccountNumber)
	})

	t.Run("username is unique", func(t *testing.T) {
		err := st.Users().CreateUser(ctx, domain.User{
			ID:            "user-2",
			Username:      "alice",
			PasswordHash:  "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
			AccountNumber: "987654321",
		})
		require.Error(t, err)
	})
}
