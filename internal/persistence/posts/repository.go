package posts

import (
	"context"
	"time"

	"gorm.io/gorm"

	"feedgraph/internal/core"
	"feedgraph/internal/persistence"
)

type Repository struct {
	DB core.DB
}

func (r *Repository) Create(ctx context.Context, newPost core.NewPost) (core.Post, error) {
	var post core.Post

	return post, r.DB.Transaction(ctx, func(tx *gorm.DB) error {
		if err := persistence.MustExist(tx, &persistence.User{}, "user", newPost.AuthorID); err != nil {
			return err
		}

		row := persistence.Post{
			AuthorID:        newPost.AuthorID,
			Content:         newPost.Content,
			MediaURL:        newPost.MediaURL,
			CommentsEnabled: newPost.CommentsEnabled,
		}
		if err := tx.Create(&row).Error; err != nil {
			return persistence.Translate(err, "user", newPost.AuthorID)
		}

		var err error
		post, err = get(tx, row.ID)
		return err
	})
}

func (r *Repository) Get(ctx context.Context, id int64) (core.Post, error) {
	return get(r.DB.Conn(ctx), id)
}

// ListByAuthor returns the author's posts in feed order.
func (r *Repository) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]core.Post, error) {
	var found []core.Post
	err := persistence.EnrichedPosts(r.DB.Conn(ctx)).
		Where("p.author_id = ?", authorID).
		Scopes(persistence.FeedOrder, persistence.Paginate(limit, offset)).
		Find(&found).Error

	return found, err
}

// Update applies the present fields of update. An empty media url clears it.
func (r *Repository) Update(ctx context.Context, id, actorID int64, update core.PostUpdate) (core.Post, error) {
	var post core.Post

	return post, r.DB.Transaction(ctx, func(tx *gorm.DB) error {
		if err := authorize(tx, id, actorID); err != nil {
			return err
		}

		changes := map[string]any{
			"updated_at": time.Now().UTC(),
		}
		if update.Content != nil {
			changes["content"] = *update.Content
		}
		if update.MediaURL != nil {
			if *update.MediaURL == "" {
				changes["media_url"] = nil
			} else {
				changes["media_url"] = *update.MediaURL
			}
		}
		if update.CommentsEnabled != nil {
			changes["comments_enabled"] = *update.CommentsEnabled
		}

		err := tx.Model(&persistence.Post{}).Where("id = ?", id).Updates(changes).Error
		if err != nil {
			return err
		}

		post, err = get(tx, id)
		return err
	})
}

// Delete removes the post together with its likes and comments. Either all of them go or none does.
func (r *Repository) Delete(ctx context.Context, id, actorID int64) error {
	return r.DB.Transaction(ctx, func(tx *gorm.DB) error {
		if err := authorize(tx, id, actorID); err != nil {
			return err
		}

		if err := tx.Where("post_id = ?", id).Delete(&persistence.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&persistence.Comment{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&persistence.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return persistence.NotFound("post", id)
		}
		return nil
	})
}

func get(db *gorm.DB, id int64) (core.Post, error) {
	var post core.Post
	err := persistence.EnrichedPosts(db).
		Where("p.id = ?", id).
		Take(&post).Error

	return post, persistence.Translate(err, "post", id)
}

// authorize checks existence first and ownership second, so a non-owner learns that the post exists.
func authorize(tx *gorm.DB, id, actorID int64) error {
	var post persistence.Post
	err := tx.Select("id", "author_id").
		Where("id = ?", id).
		Take(&post).Error
	if err != nil {
		return persistence.Translate(err, "post", id)
	}

	return core.CheckOwnership(actorID, post.AuthorID, "post", id)
}
