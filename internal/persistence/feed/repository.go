package feed

import (
	"context"

	"gorm.io/gorm"

	"feedgraph/internal/core"
	"feedgraph/internal/persistence"
)

type Repository struct {
	DB core.DB
}

// Page returns the feed window at offset. Users without follows get their own posts only.
func (r *Repository) Page(ctx context.Context, userID int64, limit, offset int) ([]core.Post, error) {
	var found []core.Post
	err := r.feed(ctx, userID).
		Scopes(persistence.FeedOrder, persistence.Paginate(limit, offset)).
		Find(&found).Error

	return found, err
}

// After returns up to limit feed posts strictly after cursor in feed order.
func (r *Repository) After(ctx context.Context, userID int64, cursor core.FeedCursor, limit int) ([]core.Post, error) {
	var found []core.Post
	err := r.feed(ctx, userID).
		Where("(p.created_at < ? OR (p.created_at = ? AND p.id > ?))", cursor.CreatedAt, cursor.CreatedAt, cursor.ID).
		Scopes(persistence.FeedOrder).
		Limit(limit).
		Find(&found).Error

	return found, err
}

func (r *Repository) feed(ctx context.Context, userID int64) *gorm.DB {
	db := r.DB.Conn(ctx)
	following := db.Session(&gorm.Session{NewDB: true}).
		Model(&persistence.Follow{}).
		Select("following_id").
		Where("follower_id = ?", userID)

	return persistence.EnrichedPosts(db).
		Where("p.author_id = ? OR p.author_id IN (?)", userID, following)
}
