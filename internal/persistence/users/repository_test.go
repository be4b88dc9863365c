package users_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"feedgraph/internal/core"
	"feedgraph/internal/persistence/persistencetest"
	"feedgraph/internal/persistence/users"
)

func TestRepository_Create(t *testing.T) {
	t.Parallel()

	repo := &users.Repository{DB: persistencetest.New(t)}

	alice, err := repo.Create(t.Context(), "alice", "alice@example.com", "Alice Liddell")
	require.NoError(t, err)
	require.NotZero(t, alice.ID)
	require.Equal(t, "alice", alice.Username)
	require.Equal(t, "Alice Liddell", alice.FullName)

	_, err = repo.Create(t.Context(), "alice", "other@example.com", "Another Alice")
	require.ErrorIs(t, err, core.ErrConflict)

	_, err = repo.Create(t.Context(), "alice2", "alice@example.com", "Alice Again")
	require.ErrorIs(t, err, core.ErrConflict)

	// Users without an email do not collide with each other.
	_, err = repo.Create(t.Context(), "bob", "", "Bob")
	require.NoError(t, err)
	_, err = repo.Create(t.Context(), "carol", "", "Carol")
	require.NoError(t, err)
}

func TestRepository_Get(t *testing.T) {
	t.Parallel()

	db := persistencetest.New(t)
	repo := &users.Repository{DB: db}
	alice := persistencetest.User(t, db, "alice")

	t.Run("by id", func(t *testing.T) {
		t.Parallel()

		user, err := repo.Get(t.Context(), alice.ID)
		require.NoError(t, err)
		require.Equal(t, alice.ID, user.ID)
		require.Equal(t, "alice", user.Username)
	})

	t.Run("by username", func(t *testing.T) {
		t.Parallel()

		user, err := repo.GetByUsername(t.Context(), "alice")
		require.NoError(t, err)
		require.Equal(t, alice.ID, user.ID)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := repo.Get(t.Context(), alice.ID+100)
		require.ErrorIs(t, err, core.ErrNotFound)

		_, err = repo.GetByUsername(t.Context(), "nobody")
		require.ErrorIs(t, err, core.ErrNotFound)
	})
}

func TestRepository_Search(t *testing.T) {
	t.Parallel()

	db := persistencetest.New(t)
	repo := &users.Repository{DB: db}

	for _, name := range []string{"zoe_admin", "Zorro", "adam", "zoeadmin", "bob"} {
		persistencetest.User(t, db, name)
	}

	usernames := func(found []core.User) []string {
		return lo.Map(found, func(u core.User, _ int) string { return u.Username })
	}

	t.Run("case insensitive substring, ordered by username", func(t *testing.T) {
		t.Parallel()

		found, err := repo.Search(t.Context(), "ZO", 10)
		require.NoError(t, err)
		require.Equal(t, []string{"Zorro", "zoe_admin", "zoeadmin"}, usernames(found))
	})

	t.Run("matches full name", func(t *testing.T) {
		t.Parallel()

		found, err := repo.Search(t.Context(), "bob full", 10)
		require.NoError(t, err)
		require.Equal(t, []string{"bob"}, usernames(found))
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		t.Parallel()

		found, err := repo.Search(t.Context(), "e_a", 10)
		require.NoError(t, err)
		require.Equal(t, []string{"zoe_admin"}, usernames(found))
	})

	t.Run("limit", func(t *testing.T) {
		t.Parallel()

		found, err := repo.Search(t.Context(), "o", 2)
		require.NoError(t, err)
		require.Len(t, found, 2)
	})
}
