package social

import (
	"context"

	"feedgraph/internal/core"
)

// Follow makes followerID follow followingID. Self-follows are rejected before the store is touched.
func (s *Service) Follow(ctx context.Context, followerID, followingID int64) (err error) {
	ctx, done := s.track(ctx, "follow", idAttr("follower_id", followerID), idAttr("following_id", followingID))
	defer done(&err)

	if err := core.CheckFollow(followerID, followingID); err != nil {
		return err
	}

	if err := s.Follows.Follow(ctx, followerID, followingID); err != nil {
		return err
	}

	s.Events.Publish(ctx, core.NewEvent(core.EventFollowCreated, followerID, followingID))
	return nil
}

func (s *Service) Unfollow(ctx context.Context, followerID, followingID int64) (err error) {
	ctx, done := s.track(ctx, "unfollow", idAttr("follower_id", followerID), idAttr("following_id", followingID))
	defer done(&err)

	if err := s.Follows.Unfollow(ctx, followerID, followingID); err != nil {
		return err
	}

	s.Events.Publish(ctx, core.NewEvent(core.EventFollowDeleted, followerID, followingID))
	return nil
}

func (s *Service) IsFollowing(ctx context.Context, followerID, followingID int64) (following bool, err error) {
	ctx, done := s.track(ctx, "is_following", idAttr("follower_id", followerID), idAttr("following_id", followingID))
	defer done(&err)

	return s.Follows.IsFollowing(ctx, followerID, followingID)
}

func (s *Service) Followers(ctx context.Context, userID int64) (users []core.User, err error) {
	ctx, done := s.track(ctx, "followers", idAttr("user_id", userID))
	defer done(&err)

	if _, err := s.Users.Get(ctx, userID); err != nil {
		return nil, err
	}

	return orEmpty(s.Follows.Followers(ctx, userID))
}

func (s *Service) Following(ctx context.Context, userID int64) (users []core.User, err error) {
	ctx, done := s.track(ctx, "following", idAttr("user_id", userID))
	defer done(&err)

	if _, err := s.Users.Get(ctx, userID); err != nil {
		return nil, err
	}

	return orEmpty(s.Follows.Following(ctx, userID))
}

func (s *Service) FollowStatus(ctx context.Context, userID int64) (stats core.FollowStats, err error) {
	ctx, done := s.track(ctx, "follow_status", idAttr("user_id", userID))
	defer done(&err)

	if _, err := s.Users.Get(ctx, userID); err != nil {
		return stats, err
	}

	return s.Follows.Stats(ctx, userID)
}

func orEmpty[T any](items []T, err error) ([]T, error) {
	if items == nil && err == nil {
		items = []T{}
	}
	return items, err
}
