package social

import (
	"context"
	"strings"

	"feedgraph/internal/core"
)

func (s *Service) CreatePost(ctx context.Context, authorID int64, content string, mediaURL *string, commentsEnabled bool) (post core.Post, err error) {
	ctx, done := s.track(ctx, "create_post", idAttr("author_id", authorID))
	defer done(&err)

	content, err = core.NormalizeContent(content)
	if err != nil {
		return post, err
	}
	if mediaURL != nil && strings.TrimSpace(*mediaURL) == "" {
		mediaURL = nil
	}

	post, err = s.Posts.Create(ctx, core.NewPost{
		AuthorID:        authorID,
		Content:         content,
		MediaURL:        mediaURL,
		CommentsEnabled: commentsEnabled,
	})
	if err != nil {
		return post, err
	}

	s.Events.Publish(ctx, core.NewEvent(core.EventPostCreated, authorID, post.ID).WithPost(post.ID))
	return post, nil
}

func (s *Service) GetPost(ctx context.Context, id int64) (post core.Post, err error) {
	ctx, done := s.track(ctx, "get_post", idAttr("post_id", id))
	defer done(&err)

	return s.Posts.Get(ctx, id)
}

// UpdatePost applies a partial update on behalf of actorID. An update without fields is rejected
// before the store is touched.
func (s *Service) UpdatePost(ctx context.Context, id, actorID int64, update core.PostUpdate) (post core.Post, err error) {
	ctx, done := s.track(ctx, "update_post", idAttr("post_id", id), idAttr("actor_id", actorID))
	defer done(&err)

	update, err = core.NormalizeUpdate(update)
	if err != nil {
		return post, err
	}

	post, err = s.Posts.Update(ctx, id, actorID, update)
	if err != nil {
		return post, err
	}

	s.Events.Publish(ctx, core.NewEvent(core.EventPostUpdated, actorID, id).WithPost(id))
	return post, nil
}

// DeletePost removes the post with its likes and comments.
func (s *Service) DeletePost(ctx context.Context, id, actorID int64) (err error) {
	ctx, done := s.track(ctx, "delete_post", idAttr("post_id", id), idAttr("actor_id", actorID))
	defer done(&err)

	if err := s.Posts.Delete(ctx, id, actorID); err != nil {
		return err
	}

	s.Events.Publish(ctx, core.NewEvent(core.EventPostDeleted, actorID, id).WithPost(id))
	return nil
}

func (s *Service) UserPosts(ctx context.Context, authorID int64, req core.PageRequest) (page core.Page[core.Post], err error) {
	ctx, done := s.track(ctx, "user_posts", idAttr("author_id", authorID))
	defer done(&err)

	if _, err := s.Users.Get(ctx, authorID); err != nil {
		return page, err
	}

	req = req.Normalize()
	rows, err := s.Posts.ListByAuthor(ctx, authorID, req.Limit+1, req.Offset())
	if err != nil {
		return page, err
	}

	return core.NewPage(rows, req.Page, req.Limit), nil
}
