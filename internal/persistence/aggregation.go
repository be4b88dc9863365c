package persistence

import (
	"gorm.io/gorm"
)

const enrichedPostColumns = `p.id, p.author_id, p.content, p.media_url, p.comments_enabled, p.created_at, p.updated_at,
	u.username, u.full_name,
	(SELECT COUNT(*) FROM likes AS lc WHERE lc.post_id = p.id) AS likes_count,
	(SELECT COUNT(*) FROM comments AS cc WHERE cc.post_id = p.id) AS comments_count`

// EnrichedPosts selects posts (aliased p) joined with their author (aliased u) together with the like and
// comment counts. The counts are scalar subqueries of the same statement, so they reflect the store at
// the instant the query runs. Scan the result into core.Post.
func EnrichedPosts(db *gorm.DB) *gorm.DB {
	return db.Table("posts AS p").
		Select(enrichedPostColumns).
		Joins("JOIN users AS u ON u.id = p.author_id")
}

// FeedOrder is the total order of posts in every listing: newest first, lower id first on equal timestamps.
func FeedOrder(db *gorm.DB) *gorm.DB {
	return db.Order("p.created_at DESC").Order("p.id ASC")
}

func Paginate(limit, offset int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(limit).Offset(offset)
	}
}
