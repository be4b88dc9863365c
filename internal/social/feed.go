package social

import (
	"context"

	"feedgraph/internal/core"
)

// Feed pages userID's feed by offset. The page carries a cursor that continues it with FeedAfter.
func (s *Service) Feed(ctx context.Context, userID int64, req core.PageRequest) (page core.Page[core.Post], err error) {
	ctx, done := s.track(ctx, "feed", idAttr("user_id", userID))
	defer done(&err)

	if _, err := s.Users.Get(ctx, userID); err != nil {
		return page, err
	}

	req = req.Normalize()
	rows, err := s.Feeds.Page(ctx, userID, req.Limit+1, req.Offset())
	if err != nil {
		return page, err
	}

	return withCursor(core.NewPage(rows, req.Page, req.Limit)), nil
}

// FeedAfter continues userID's feed after an opaque cursor returned by a previous page.
func (s *Service) FeedAfter(ctx context.Context, userID int64, cursor string, limit int) (page core.Page[core.Post], err error) {
	ctx, done := s.track(ctx, "feed_after", idAttr("user_id", userID))
	defer done(&err)

	after, err := core.DecodeFeedCursor(cursor)
	if err != nil {
		return page, err
	}

	if _, err := s.Users.Get(ctx, userID); err != nil {
		return page, err
	}

	limit = core.NormalizeLimit(limit)
	rows, err := s.Feeds.After(ctx, userID, after, limit+1)
	if err != nil {
		return page, err
	}

	return withCursor(core.NewPage(rows, 0, limit)), nil
}

func withCursor(page core.Page[core.Post]) core.Page[core.Post] {
	if n := len(page.Items); n > 0 && page.Pagination.HasMore {
		page.Pagination.NextCursor = core.CursorOf(page.Items[n-1]).Encode()
	}
	return page
}
