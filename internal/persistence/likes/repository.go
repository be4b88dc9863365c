package likes

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"feedgraph/internal/core"
	"feedgraph/internal/persistence"
)

type Repository struct {
	DB core.DB
}

func (r *Repository) Like(ctx context.Context, userID, postID int64) error {
	return r.DB.Transaction(ctx, func(tx *gorm.DB) error {
		if err := persistence.MustExist(tx, &persistence.User{}, "user", userID); err != nil {
			return err
		}
		if err := persistence.MustExist(tx, &persistence.Post{}, "post", postID); err != nil {
			return err
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&persistence.Like{
			UserID: userID,
			PostID: postID,
		})
		if res.Error != nil {
			return persistence.Translate(res.Error, "post", postID)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: user %d already likes post %d", core.ErrConflict, userID, postID)
		}

		return nil
	})
}

func (r *Repository) Unlike(ctx context.Context, userID, postID int64) error {
	res := r.DB.Conn(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&persistence.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d does not like post %d", core.ErrNotFound, userID, postID)
	}

	return nil
}

func (r *Repository) HasLiked(ctx context.Context, userID, postID int64) (bool, error) {
	var count int64
	err := r.DB.Conn(ctx).
		Model(&persistence.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error

	return count > 0, err
}

// Likers lists the users who liked the post, latest like first.
func (r *Repository) Likers(ctx context.Context, postID int64, limit, offset int) ([]core.Liker, error) {
	var found []core.Liker
	err := r.DB.Conn(ctx).
		Table("likes AS l").
		Select("u.id, u.username, u.full_name, u.created_at, l.created_at AS liked_at").
		Joins("JOIN users AS u ON u.id = l.user_id").
		Where("l.post_id = ?", postID).
		Order("l.created_at DESC").
		Order("u.id ASC").
		Scopes(persistence.Paginate(limit, offset)).
		Find(&found).Error

	return found, err
}

// LikedPosts lists the posts the user liked, most recently liked first.
func (r *Repository) LikedPosts(ctx context.Context, userID int64, limit, offset int) ([]core.Post, error) {
	var found []core.Post
	err := persistence.EnrichedPosts(r.DB.Conn(ctx)).
		Joins("JOIN likes AS l ON l.post_id = p.id").
		Where("l.user_id = ?", userID).
		Order("l.created_at DESC").
		Order("p.id ASC").
		Scopes(persistence.Paginate(limit, offset)).
		Find(&found).Error

	return found, err
}
