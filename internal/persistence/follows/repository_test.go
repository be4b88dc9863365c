package follows_test

import (
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"feedgraph/internal/core"
	"feedgraph/internal/persistence/follows"
	"feedgraph/internal/persistence/persistencetest"
)

func ids(users []core.User) []int64 {
	return lo.Map(users, func(u core.User, _ int) int64 { return u.ID })
}

func TestRepository_Follow(t *testing.T) {
	t.Parallel()

	db := persistencetest.New(t)
	repo := &follows.Repository{DB: db}
	alice := persistencetest.User(t, db, "alice")
	bob := persistencetest.User(t, db, "bob")

	require.NoError(t, repo.Follow(t.Context(), alice.ID, bob.ID))

	following, err := repo.Following(t.Context(), alice.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{bob.ID}, ids(following))

	followers, err := repo.Followers(t.Context(), bob.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{alice.ID}, ids(followers))

	err = repo.Follow(t.Context(), alice.ID, bob.ID)
	require.ErrorIs(t, err, core.ErrConflict)

	stats, err := repo.Stats(t.Context(), bob.ID)
	require.NoError(t, err)
	require.Equal(t, core.FollowStats{FollowersCount: 1, FollowingCount: 0}, stats)

	ok, err := repo.IsFollowing(t.Context(), alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.IsFollowing(t.Context(), bob.ID, alice.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRepository_Follow_missingUser(t *testing.T) {
	t.Parallel()

	db := persistencetest.New(t)
	repo := &follows.Repository{DB: db}
	alice := persistencetest.User(t, db, "alice")

	err := repo.Follow(t.Context(), alice.ID, alice.ID+100)
	require.ErrorIs(t, err, core.ErrNotFound)
	require.Zero(t, persistencetest.Count(t, db, "follows", ""))
}

// The test database has a single connection, so the attempts reach the store one after another.
// This covers the ON CONFLICT path under goroutine contention, not a race between database sessions.
func TestRepository_Follow_repeatedFromGoroutines(t *testing.T) {
	t.Parallel()

	db := persistencetest.New(t)
	repo := &follows.Repository{DB: db}
	alice := persistencetest.User(t, db, "alice")
	bob := persistencetest.User(t, db, "bob")

	const attempts = 8

	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = repo.Follow(t.Context(), alice.ID, bob.ID)
		}()
	}
	wg.Wait()

	succeeded := lo.CountBy(errs, func(err error) bool { return err == nil })
	require.Equal(t, 1, succeeded)
	for _, err := range errs {
		if err != nil {
			require.ErrorIs(t, err, core.ErrConflict)
		}
	}
	require.EqualValues(t, 1, persistencetest.Count(t, db, "follows", ""))
}

func TestRepository_Unfollow(t *testing.T) {
	t.Parallel()

	db := persistencetest.New(t)
	repo := &follows.Repository{DB: db}
	alice := persistencetest.User(t, db, "alice")
	bob := persistencetest.User(t, db, "bob")
	persistencetest.Follow(t, db, alice.ID, bob.ID, persistencetest.At(0))

	require.NoError(t, repo.Unfollow(t.Context(), alice.ID, bob.ID))

	err := repo.Unfollow(t.Context(), alice.ID, bob.ID)
	require.ErrorIs(t, err, core.ErrNotFound)

	stats, err := repo.Stats(t.Context(), bob.ID)
	require.NoError(t, err)
	require.Zero(t, stats.FollowersCount)
}

func TestRepository_lists(t *testing.T) {
	t.Parallel()

	db := persistencetest.New(t)
	repo := &follows.Repository{DB: db}
	target := persistencetest.User(t, db, "target")
	first := persistencetest.User(t, db, "first")
	second := persistencetest.User(t, db, "second")
	third := persistencetest.User(t, db, "third")

	persistencetest.Follow(t, db, first.ID, target.ID, persistencetest.At(10))
	persistencetest.Follow(t, db, second.ID, target.ID, persistencetest.At(30))
	persistencetest.Follow(t, db, third.ID, target.ID, persistencetest.At(20))
	persistencetest.Follow(t, db, target.ID, first.ID, persistencetest.At(5))
	persistencetest.Follow(t, db, target.ID, third.ID, persistencetest.At(50))

	followers, err := repo.Followers(t.Context(), target.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{second.ID, third.ID, first.ID}, ids(followers))

	following, err := repo.Following(t.Context(), target.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{third.ID, first.ID}, ids(following))

	stats, err := repo.Stats(t.Context(), target.ID)
	require.NoError(t, err)
	require.Equal(t, core.FollowStats{FollowersCount: 3, FollowingCount: 2}, stats)

	followers, err = repo.Followers(t.Context(), second.ID)
	require.NoError(t, err)
	require.Empty(t, followers)
}
