package social_test

import (
	"log/slog"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"feedgraph/internal/core"
	"feedgraph/internal/events"
	"feedgraph/internal/persistence"
	"feedgraph/internal/persistence/comments"
	"feedgraph/internal/persistence/feed"
	"feedgraph/internal/persistence/follows"
	"feedgraph/internal/persistence/likes"
	"feedgraph/internal/persistence/persistencetest"
	"feedgraph/internal/persistence/posts"
	"feedgraph/internal/persistence/users"
	"feedgraph/internal/social"
)

type fixture struct {
	service  *social.Service
	db       *persistence.DB
	recorder *events.Recorder
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db := persistencetest.New(t)
	recorder := &events.Recorder{}

	service := &social.Service{
		Logger:   slog.New(slog.DiscardHandler),
		Users:    &users.Repository{DB: db},
		Follows:  &follows.Repository{DB: db},
		Posts:    &posts.Repository{DB: db},
		Comments: &comments.Repository{DB: db},
		Likes:    &likes.Repository{DB: db},
		Feeds:    &feed.Repository{DB: db},
		Events:   recorder,
	}
	require.NoError(t, service.Init(t.Context()))

	return fixture{service: service, db: db, recorder: recorder}
}

func postIDs(found []core.Post) []int64 {
	return lo.Map(found, func(p core.Post, _ int) int64 { return p.ID })
}

func TestService_Follow(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := t.Context()
	a := persistencetest.User(t, f.db, "a")
	b := persistencetest.User(t, f.db, "b")

	require.NoError(t, f.service.Follow(ctx, a.ID, b.ID))

	following, err := f.service.Following(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{b.ID}, lo.Map(following, func(u core.User, _ int) int64 { return u.ID }))

	followers, err := f.service.Followers(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{a.ID}, lo.Map(followers, func(u core.User, _ int) int64 { return u.ID }))

	err = f.service.Follow(ctx, a.ID, b.ID)
	require.ErrorIs(t, err, core.ErrConflict)

	stats, err := f.service.FollowStatus(ctx, b.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.FollowersCount)

	require.Equal(t, []core.EventKind{core.EventFollowCreated}, f.recorder.Kinds())
	event := f.recorder.Events()[0]
	require.Equal(t, a.ID, event.ActorID)
	require.Equal(t, b.ID, event.SubjectID)

	require.NoError(t, f.service.Unfollow(ctx, a.ID, b.ID))
	err = f.service.Unfollow(ctx, a.ID, b.ID)
	require.ErrorIs(t, err, core.ErrNotFound)

	require.Equal(t, []core.EventKind{core.EventFollowCreated, core.EventFollowDeleted}, f.recorder.Kinds())
}

func TestService_Follow_self(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	a := persistencetest.User(t, f.db, "a")

	err := f.service.Follow(t.Context(), a.ID, a.ID)
	require.ErrorIs(t, err, core.ErrSelfFollow)
	require.ErrorIs(t, err, core.ErrInvalidInput)

	// Rejected regardless of whether the user exists.
	err = f.service.Follow(t.Context(), 999, 999)
	require.ErrorIs(t, err, core.ErrSelfFollow)

	require.Zero(t, persistencetest.Count(t, f.db, "follows", ""))
	require.Empty(t, f.recorder.Events())
}

func TestService_lists_unknownUser(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := t.Context()

	_, err := f.service.Followers(ctx, 404)
	require.ErrorIs(t, err, core.ErrNotFound)

	_, err = f.service.FollowStatus(ctx, 404)
	require.ErrorIs(t, err, core.ErrNotFound)

	_, err = f.service.Feed(ctx, 404, core.PageRequest{})
	require.ErrorIs(t, err, core.ErrNotFound)

	_, err = f.service.UserPosts(ctx, 404, core.PageRequest{})
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestService_Posts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := t.Context()
	owner := persistencetest.User(t, f.db, "owner")
	other := persistencetest.User(t, f.db, "other")

	_, err := f.service.CreatePost(ctx, owner.ID, "   ", nil, true)
	require.ErrorIs(t, err, core.ErrEmptyContent)

	post, err := f.service.CreatePost(ctx, owner.ID, "  hello  ", lo.ToPtr(""), true)
	require.NoError(t, err)
	require.Equal(t, "hello", post.Content)
	require.Nil(t, post.MediaURL)

	t.Run("empty update is not a not-found", func(t *testing.T) {
		_, err := f.service.UpdatePost(ctx, post.ID, owner.ID, core.PostUpdate{})
		require.ErrorIs(t, err, core.ErrNoChanges)
		require.NotErrorIs(t, err, core.ErrNotFound)

		_, err = f.service.UpdatePost(ctx, post.ID, owner.ID, core.PostUpdate{Content: lo.ToPtr(" ")})
		require.ErrorIs(t, err, core.ErrEmptyContent)
	})

	t.Run("update by owner", func(t *testing.T) {
		updated, err := f.service.UpdatePost(ctx, post.ID, owner.ID, core.PostUpdate{Content: lo.ToPtr(" edited ")})
		require.NoError(t, err)
		require.Equal(t, "edited", updated.Content)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		_, err := f.service.UpdatePost(ctx, post.ID, other.ID, core.PostUpdate{Content: lo.ToPtr("mine")})
		require.ErrorIs(t, err, core.ErrForbidden)

		err = f.service.DeletePost(ctx, post.ID, other.ID)
		require.ErrorIs(t, err, core.ErrForbidden)

		_, err = f.service.GetPost(ctx, post.ID)
		require.NoError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, f.service.DeletePost(ctx, post.ID, owner.ID))

		_, err := f.service.GetPost(ctx, post.ID)
		require.ErrorIs(t, err, core.ErrNotFound)

		err = f.service.DeletePost(ctx, post.ID, owner.ID)
		require.ErrorIs(t, err, core.ErrNotFound)
	})

	require.Equal(t, []core.EventKind{
		core.EventPostCreated,
		core.EventPostUpdated,
		core.EventPostDeleted,
	}, f.recorder.Kinds())
}

func TestService_Comments(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := t.Context()
	owner := persistencetest.User(t, f.db, "owner")
	commenter := persistencetest.User(t, f.db, "commenter")

	open, err := f.service.CreatePost(ctx, owner.ID, "open", nil, true)
	require.NoError(t, err)
	closed, err := f.service.CreatePost(ctx, owner.ID, "closed", nil, false)
	require.NoError(t, err)

	_, err = f.service.CreateComment(ctx, commenter.ID, closed.ID, "let me in")
	require.ErrorIs(t, err, core.ErrCommentsDisabled)

	_, err = f.service.CreateComment(ctx, commenter.ID, open.ID, "")
	require.ErrorIs(t, err, core.ErrEmptyContent)

	_, err = f.service.CreateComment(ctx, commenter.ID, open.ID+100, "where")
	require.ErrorIs(t, err, core.ErrNotFound)

	comment, err := f.service.CreateComment(ctx, commenter.ID, open.ID, " first! ")
	require.NoError(t, err)
	require.Equal(t, "first!", comment.Content)
	require.Equal(t, "commenter", comment.Username)

	_, err = f.service.UpdateComment(ctx, comment.ID, owner.ID, "moderated")
	require.ErrorIs(t, err, core.ErrForbidden)

	updated, err := f.service.UpdateComment(ctx, comment.ID, commenter.ID, "second thoughts")
	require.NoError(t, err)
	require.Equal(t, "second thoughts", updated.Content)

	page, err := f.service.PostComments(ctx, open.ID, core.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.False(t, page.Pagination.HasMore)
	require.Equal(t, 1, page.Pagination.Page)
	require.Equal(t, core.DefaultPageLimit, page.Pagination.Limit)

	post, err := f.service.GetPost(ctx, open.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, post.CommentsCount)

	require.ErrorIs(t, f.service.DeleteComment(ctx, comment.ID, owner.ID), core.ErrForbidden)
	require.NoError(t, f.service.DeleteComment(ctx, comment.ID, commenter.ID))
	require.ErrorIs(t, f.service.DeleteComment(ctx, comment.ID, commenter.ID), core.ErrNotFound)

	_, err = f.service.PostComments(ctx, open.ID+100, core.PageRequest{})
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestService_Likes(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := t.Context()
	owner := persistencetest.User(t, f.db, "owner")
	fan := persistencetest.User(t, f.db, "fan")
	post, err := f.service.CreatePost(ctx, owner.ID, "like me", nil, true)
	require.NoError(t, err)

	likesCount := func() int64 {
		post, err := f.service.GetPost(ctx, post.ID)
		require.NoError(t, err)
		return post.LikesCount
	}

	require.NoError(t, f.service.Like(ctx, fan.ID, post.ID))
	require.ErrorIs(t, f.service.Like(ctx, fan.ID, post.ID), core.ErrConflict)
	require.EqualValues(t, 1, likesCount())

	liked, err := f.service.HasLiked(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	require.True(t, liked)

	likers, err := f.service.PostLikes(ctx, post.ID, core.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, "fan", likers.Items[0].Username)

	likedPosts, err := f.service.LikedPosts(ctx, fan.ID, core.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, []int64{post.ID}, postIDs(likedPosts.Items))

	require.NoError(t, f.service.Unlike(ctx, fan.ID, post.ID))
	require.Zero(t, likesCount())
	require.ErrorIs(t, f.service.Unlike(ctx, fan.ID, post.ID), core.ErrNotFound)
}

func TestService_Feed(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := t.Context()
	u1 := persistencetest.User(t, f.db, "u1")
	u2 := persistencetest.User(t, f.db, "u2")
	require.NoError(t, f.service.Follow(ctx, u1.ID, u2.ID))

	p1 := persistencetest.Post(t, f.db, u2.ID, "P1", persistencetest.At(10))
	p2 := persistencetest.Post(t, f.db, u2.ID, "P2", persistencetest.At(20))
	p3 := persistencetest.Post(t, f.db, u1.ID, "P3", persistencetest.At(15))

	page, err := f.service.Feed(ctx, u1.ID, core.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, []int64{p2, p3, p1}, postIDs(page.Items))
	require.False(t, page.Pagination.HasMore)
	require.Empty(t, page.Pagination.NextCursor)
}

func TestService_Feed_pagination(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := t.Context()
	reader := persistencetest.User(t, f.db, "reader")
	writer := persistencetest.User(t, f.db, "writer")
	require.NoError(t, f.service.Follow(ctx, reader.ID, writer.ID))

	for i := range 25 {
		persistencetest.Post(t, f.db, writer.ID, "post", persistencetest.At(i))
	}

	first, err := f.service.Feed(ctx, reader.ID, core.PageRequest{Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, first.Items, 20)
	require.True(t, first.Pagination.HasMore)
	require.NotEmpty(t, first.Pagination.NextCursor)

	second, err := f.service.Feed(ctx, reader.ID, core.PageRequest{Page: 2, Limit: 20})
	require.NoError(t, err)
	require.Len(t, second.Items, 5)
	require.False(t, second.Pagination.HasMore)

	t.Run("exactly full last page", func(t *testing.T) {
		page, err := f.service.Feed(ctx, reader.ID, core.PageRequest{Page: 5, Limit: 5})
		require.NoError(t, err)
		require.Len(t, page.Items, 5)
		require.False(t, page.Pagination.HasMore)
	})

	t.Run("cursor continues the offset page", func(t *testing.T) {
		next, err := f.service.FeedAfter(ctx, reader.ID, first.Pagination.NextCursor, 20)
		require.NoError(t, err)
		require.Equal(t, postIDs(second.Items), postIDs(next.Items))
		require.False(t, next.Pagination.HasMore)
	})

	t.Run("malformed cursor", func(t *testing.T) {
		_, err := f.service.FeedAfter(ctx, reader.ID, "not a cursor!", 20)
		require.ErrorIs(t, err, core.ErrInvalidCursor)
	})

	t.Run("page beyond any offset is empty", func(t *testing.T) {
		page, err := f.service.Feed(ctx, reader.ID, core.PageRequest{Page: 4611686018427387904, Limit: 20})
		require.NoError(t, err)
		require.Empty(t, page.Items)
		require.False(t, page.Pagination.HasMore)
	})

	t.Run("limit is capped", func(t *testing.T) {
		page, err := f.service.Feed(ctx, reader.ID, core.PageRequest{Limit: 1000})
		require.NoError(t, err)
		require.Equal(t, core.MaxPageLimit, page.Pagination.Limit)
		require.Len(t, page.Items, 25)
	})
}

func TestService_Users(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := t.Context()

	user, err := f.service.CreateUser(ctx, " alice ", "alice@example.com", "Alice")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	_, err = f.service.CreateUser(ctx, "alice", "", "Other Alice")
	require.ErrorIs(t, err, core.ErrConflict)

	_, err = f.service.CreateUser(ctx, "  ", "", "Nobody")
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = f.service.SearchUsers(ctx, " a ", 10)
	require.ErrorIs(t, err, core.ErrSearchTooShort)

	found, err := f.service.SearchUsers(ctx, "LIC", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)

	found, err = f.service.SearchUsers(ctx, "zz", 10)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Empty(t, found)

	byName, err := f.service.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, user.ID, byName.ID)
}
