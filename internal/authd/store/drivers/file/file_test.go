package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harborbank/authd/internal/authd/domain"
	"github.com/harborbank/authd/internal/authd/store"
)

func testSeed() store.SeedFile {
	return store.SeedFile{
		Clients: []store.SeedClient{
			{ID: "app1", Name: "Example App", SecretHash: "hash-a"},
		},
		Users: []store.SeedUser{
			{
				ID:            "user-1",
				Username:      "alice",
				PasswordHash:  "hash-b",
				AccountNumber: "123456789",
				Balance:       104250,
			},
		},
	}
}

func TestNewStoreFromSeed(t *testing.T) {
	t.Parallel()

	st, err := NewStoreFromSeed(testSeed())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("client lookup", func(t *testing.T) {
		c, err := st.Clients().GetClientByID(ctx, "app1")
		require.NoError(t, err)
		require.Equal(t, "Example App", c.Name)

		_, err = st.Clients().GetClientByID(ctx, "ghost")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("user lookup by id and username", func(t *testing.T) {
		byID, err := st.Users().GetUserByID(ctx, "user-1")
		require.NoError(t, err)
		byName, err := st.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, byID, byName)
		require.Equal(t, int64(104250), byID.Balance)

		_, err = st.Users().GetUserByUsername(ctx, "mallory")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicates are rejected", func(t *testing.T) {
		err := st.Clients().CreateClient(ctx, domain.Client{ID: "app1"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		err = st.Users().CreateUser(ctx, domain.User{ID: "user-9", Username: "alice"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestNewStoreFromSeedGeneratesMissingUserIDs(t *testing.T) {
	t.Parallel()

	seed := testSeed()
	seed.Users[0].ID = ""

	st, err := NewStoreFromSeed(seed)
	require.NoError(t, err)

	u, err := st.Users().GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
}

func TestNewStoreFromSeedValidates(t *testing.T) {
	t.Parallel()

	seed := testSeed()
	seed.Users[0].PasswordHash = ""

	_, err := NewStoreFromSeed(seed)
	require.Error(t, err)
}

func TestNewStoreReadsSeedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"clients": [
			{"client_id": "app1", "name": "Example App", "client_secret_hash": "hash-a"}
		],
		"users": [
			{"id": "user-1", "username": "alice", "password_hash": "hash-b",
			 "account_number": "123456789", "balance": 104250}
		]
	}`), 0o600))

	st, err := NewStore(path)
	require.NoError(t, err)

	c, err := st.Clients().GetClientByID(context.Background(), "app1")
	require.NoError(t, err)
	require.Equal(t, "hash-a", c.SecretHash)
}

func TestNewStoreMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewStore(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
