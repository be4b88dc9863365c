package social

import (
	"context"

	"feedgraph/internal/core"
)

func (s *Service) CreateComment(ctx context.Context, authorID, postID int64, content string) (comment core.Comment, err error) {
	ctx, done := s.track(ctx, "create_comment", idAttr("author_id", authorID), idAttr("post_id", postID))
	defer done(&err)

	content, err = core.NormalizeContent(content)
	if err != nil {
		return comment, err
	}

	comment, err = s.Comments.Create(ctx, authorID, postID, content)
	if err != nil {
		return comment, err
	}

	s.Events.Publish(ctx, core.NewEvent(core.EventCommentCreated, authorID, comment.ID).WithPost(postID))
	return comment, nil
}

func (s *Service) GetComment(ctx context.Context, id int64) (comment core.Comment, err error) {
	ctx, done := s.track(ctx, "get_comment", idAttr("comment_id", id))
	defer done(&err)

	return s.Comments.Get(ctx, id)
}

func (s *Service) UpdateComment(ctx context.Context, id, actorID int64, content string) (comment core.Comment, err error) {
	ctx, done := s.track(ctx, "update_comment", idAttr("comment_id", id), idAttr("actor_id", actorID))
	defer done(&err)

	content, err = core.NormalizeContent(content)
	if err != nil {
		return comment, err
	}

	comment, err = s.Comments.Update(ctx, id, actorID, content)
	if err != nil {
		return comment, err
	}

	s.Events.Publish(ctx, core.NewEvent(core.EventCommentUpdated, actorID, id).WithPost(comment.PostID))
	return comment, nil
}

func (s *Service) DeleteComment(ctx context.Context, id, actorID int64) (err error) {
	ctx, done := s.track(ctx, "delete_comment", idAttr("comment_id", id), idAttr("actor_id", actorID))
	defer done(&err)

	if err := s.Comments.Delete(ctx, id, actorID); err != nil {
		return err
	}

	s.Events.Publish(ctx, core.NewEvent(core.EventCommentDeleted, actorID, id))
	return nil
}

// PostComments pages the comments of a post, newest first.
func (s *Service) PostComments(ctx context.Context, postID int64, req core.PageRequest) (page core.Page[core.Comment], err error) {
	ctx, done := s.track(ctx, "post_comments", idAttr("post_id", postID))
	defer done(&err)

	if _, err := s.Posts.Get(ctx, postID); err != nil {
		return page, err
	}

	req = req.Normalize()
	rows, err := s.Comments.ListByPost(ctx, postID, req.Limit+1, req.Offset())
	if err != nil {
		return page, err
	}

	return core.NewPage(rows, req.Page, req.Limit), nil
}
