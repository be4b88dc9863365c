package social

import (
	"context"

	"feedgraph/internal/core"
)

func (s *Service) Like(ctx context.Context, userID, postID int64) (err error) {
	ctx, done := s.track(ctx, "like", idAttr("user_id", userID), idAttr("post_id", postID))
	defer done(&err)

	if err := s.Likes.Like(ctx, userID, postID); err != nil {
		return err
	}

	s.Events.Publish(ctx, core.NewEvent(core.EventLikeCreated, userID, postID).WithPost(postID))
	return nil
}

func (s *Service) Unlike(ctx context.Context, userID, postID int64) (err error) {
	ctx, done := s.track(ctx, "unlike", idAttr("user_id", userID), idAttr("post_id", postID))
	defer done(&err)

	if err := s.Likes.Unlike(ctx, userID, postID); err != nil {
		return err
	}

	s.Events.Publish(ctx, core.NewEvent(core.EventLikeDeleted, userID, postID).WithPost(postID))
	return nil
}

func (s *Service) HasLiked(ctx context.Context, userID, postID int64) (liked bool, err error) {
	ctx, done := s.track(ctx, "has_liked", idAttr("user_id", userID), idAttr("post_id", postID))
	defer done(&err)

	return s.Likes.HasLiked(ctx, userID, postID)
}

func (s *Service) PostLikes(ctx context.Context, postID int64, req core.PageRequest) (page core.Page[core.Liker], err error) {
	ctx, done := s.track(ctx, "post_likes", idAttr("post_id", postID))
	defer done(&err)

	if _, err := s.Posts.Get(ctx, postID); err != nil {
		return page, err
	}

	req = req.Normalize()
	rows, err := s.Likes.Likers(ctx, postID, req.Limit+1, req.Offset())
	if err != nil {
		return page, err
	}

	return core.NewPage(rows, req.Page, req.Limit), nil
}

// LikedPosts pages the posts userID liked, most recently liked first.
func (s *Service) LikedPosts(ctx context.Context, userID int64, req core.PageRequest) (page core.Page[core.Post], err error) {
	ctx, done := s.track(ctx, "liked_posts", idAttr("user_id", userID))
	defer done(&err)

	if _, err := s.Users.Get(ctx, userID); err != nil {
		return page, err
	}

	req = req.Normalize()
	rows, err := s.Likes.LikedPosts(ctx, userID, req.Limit+1, req.Offset())
	if err != nil {
		return page, err
	}

	return core.NewPage(rows, req.Page, req.Limit), nil
}
