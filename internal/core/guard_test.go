package core_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedgraph/internal/core"
)

func TestCheckFollow(t *testing.T) {
	t.Parallel()

	require.NoError(t, core.CheckFollow(1, 2))
	require.ErrorIs(t, core.CheckFollow(3, 3), core.ErrSelfFollow)
	require.ErrorIs(t, core.CheckFollow(3, 3), core.ErrInvalidInput)
}

func TestCheckOwnership(t *testing.T) {
	t.Parallel()

	require.NoError(t, core.CheckOwnership(1, 1, "post", 10))

	err := core.CheckOwnership(2, 1, "post", 10)
	require.ErrorIs(t, err, core.ErrForbidden)
	require.Contains(t, err.Error(), "post 10")
}

func TestNormalizeContent(t *testing.T) {
	t.Parallel()

	content, err := core.NormalizeContent("  hello \n")
	require.NoError(t, err)
	require.Equal(t, "hello", content)

	_, err = core.NormalizeContent(" \t\n")
	require.ErrorIs(t, err, core.ErrEmptyContent)
}

func TestNormalizeUpdate(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		_, err := core.NormalizeUpdate(core.PostUpdate{})
		require.ErrorIs(t, err, core.ErrNoChanges)
	})

	t.Run("trims content", func(t *testing.T) {
		t.Parallel()

		update, err := core.NormalizeUpdate(core.PostUpdate{Content: lo.ToPtr(" new ")})
		require.NoError(t, err)
		require.Equal(t, "new", *update.Content)
	})

	t.Run("blank content", func(t *testing.T) {
		t.Parallel()

		_, err := core.NormalizeUpdate(core.PostUpdate{Content: lo.ToPtr("  ")})
		require.ErrorIs(t, err, core.ErrEmptyContent)
	})

	t.Run("flags only", func(t *testing.T) {
		t.Parallel()

		update, err := core.NormalizeUpdate(core.PostUpdate{CommentsEnabled: lo.ToPtr(false)})
		require.NoError(t, err)
		require.Nil(t, update.Content)
		require.False(t, *update.CommentsEnabled)
	})
}

func TestNormalizeSearch(t *testing.T) {
	t.Parallel()

	keyword, err := core.NormalizeSearch("  zo ")
	require.NoError(t, err)
	require.Equal(t, "zo", keyword)

	_, err = core.NormalizeSearch(" z ")
	require.ErrorIs(t, err, core.ErrSearchTooShort)

	// Length is counted in characters, not bytes.
	_, err = core.NormalizeSearch("é")
	require.ErrorIs(t, err, core.ErrSearchTooShort)
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	cases := map[error]string{
		nil:                      "ok",
		core.ErrNotFound:         "not_found",
		core.ErrConflict:         "conflict",
		core.ErrCommentsDisabled: "forbidden",
		core.ErrInvalidCursor:    "invalid_input",
		assert.AnError:           "error",
	}
	for err, outcome := range cases {
		require.Equal(t, outcome, core.Outcome(err), "%v", err)
	}

	require.True(t, core.IsBusiness(core.ErrSelfFollow))
	require.False(t, core.IsBusiness(assert.AnError))
	require.False(t, core.IsBusiness(nil))
}

func TestEventKind_Known(t *testing.T) {
	t.Parallel()

	require.True(t, core.EventFollowDeleted.Known())
	require.True(t, core.EventCommentUpdated.Known())
	require.False(t, core.EventKind("").Known())
	require.False(t, core.EventKind("post.archived").Known())
}
