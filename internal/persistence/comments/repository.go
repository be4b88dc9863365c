package comments

import (
	"context"
	"time"

	"gorm.io/gorm"

	"feedgraph/internal/core"
	"feedgraph/internal/persistence"
)

const commentColumns = "c.id, c.author_id, c.post_id, c.content, c.created_at, c.updated_at, u.username"

type Repository struct {
	DB core.DB
}

// Create adds a comment to an existing post that accepts comments.
func (r *Repository) Create(ctx context.Context, authorID, postID int64, content string) (core.Comment, error) {
	var comment core.Comment

	return comment, r.DB.Transaction(ctx, func(tx *gorm.DB) error {
		if err := persistence.MustExist(tx, &persistence.User{}, "user", authorID); err != nil {
			return err
		}

		var post persistence.Post
		err := tx.Select("id", "comments_enabled").Where("id = ?", postID).Take(&post).Error
		if err != nil {
			return persistence.Translate(err, "post", postID)
		}
		if !post.CommentsEnabled {
			return core.ErrCommentsDisabled
		}

		row := persistence.Comment{
			AuthorID: authorID,
			PostID:   postID,
			Content:  content,
		}
		if err := tx.Create(&row).Error; err != nil {
			return persistence.Translate(err, "post", postID)
		}

		comment, err = get(tx, row.ID)
		return err
	})
}

func (r *Repository) Get(ctx context.Context, id int64) (core.Comment, error) {
	return get(r.DB.Conn(ctx), id)
}

func (r *Repository) Update(ctx context.Context, id, actorID int64, content string) (core.Comment, error) {
	var comment core.Comment

	return comment, r.DB.Transaction(ctx, func(tx *gorm.DB) error {
		if err := authorize(tx, id, actorID); err != nil {
			return err
		}

		err := tx.Model(&persistence.Comment{}).Where("id = ?", id).Updates(map[string]any{
			"content":    content,
			"updated_at": time.Now().UTC(),
		}).Error
		if err != nil {
			return err
		}

		comment, err = get(tx, id)
		return err
	})
}

func (r *Repository) Delete(ctx context.Context, id, actorID int64) error {
	return r.DB.Transaction(ctx, func(tx *gorm.DB) error {
		if err := authorize(tx, id, actorID); err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&persistence.Comment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return persistence.NotFound("comment", id)
		}
		return nil
	})
}

// ListByPost returns the newest comments first.
func (r *Repository) ListByPost(ctx context.Context, postID int64, limit, offset int) ([]core.Comment, error) {
	var found []core.Comment
	err := enriched(r.DB.Conn(ctx)).
		Where("c.post_id = ?", postID).
		Order("c.created_at DESC").
		Order("c.id DESC").
		Scopes(persistence.Paginate(limit, offset)).
		Find(&found).Error

	return found, err
}

func enriched(db *gorm.DB) *gorm.DB {
	return db.Table("comments AS c").
		Select(commentColumns).
		Joins("JOIN users AS u ON u.id = c.author_id")
}

func get(db *gorm.DB, id int64) (core.Comment, error) {
	var comment core.Comment
	err := enriched(db).Where("c.id = ?", id).Take(&comment).Error

	return comment, persistence.Translate(err, "comment", id)
}

func authorize(tx *gorm.DB, id, actorID int64) error {
	var comment persistence.Comment
	err := tx.Select("id", "author_id").Where("id = ?", id).Take(&comment).Error
	if err != nil {
		return persistence.Translate(err, "comment", id)
	}

	return core.CheckOwnership(actorID, comment.AuthorID, "comment", id)
}
