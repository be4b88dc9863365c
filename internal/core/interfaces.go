package core

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type DB interface {
	// Conn returns a fresh session bound to ctx.
	Conn(ctx context.Context) *gorm.DB
	// Transaction runs fn in a single transaction, rolled back when fn fails or ctx is cancelled.
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	EstimatedCount(ctx context.Context, tableName string) (int64, error)
	Ping(ctx context.Context) error
	DB() (*sql.DB, error)
}

type Migrator interface {
	Up(ctx context.Context) error
	Down(ctx context.Context) error
}

// UserRepository is the identity collaborator.
type UserRepository interface {
	Create(ctx context.Context, username, email, fullName string) (User, error)
	Get(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Search(ctx context.Context, keyword string, limit int) ([]User, error)
}

// FollowRepository is the relationship store.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followingID int64) error
	Unfollow(ctx context.Context, followerID, followingID int64) error
	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
	Followers(ctx context.Context, userID int64) ([]User, error)
	Following(ctx context.Context, userID int64) ([]User, error)
	Stats(ctx context.Context, userID int64) (FollowStats, error)
}

type PostRepository interface {
	Create(ctx context.Context, post NewPost) (Post, error)
	Get(ctx context.Context, id int64) (Post, error)
	ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]Post, error)
	Update(ctx context.Context, id, actorID int64, update PostUpdate) (Post, error)
	Delete(ctx context.Context, id, actorID int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, authorID, postID int64, content string) (Comment, error)
	Get(ctx context.Context, id int64) (Comment, error)
	Update(ctx context.Context, id, actorID int64, content string) (Comment, error)
	Delete(ctx context.Context, id, actorID int64) error
	ListByPost(ctx context.Context, postID int64, limit, offset int) ([]Comment, error)
}

type LikeRepository interface {
	Like(ctx context.Context, userID, postID int64) error
	Unlike(ctx context.Context, userID, postID int64) error
	HasLiked(ctx context.Context, userID, postID int64) (bool, error)
	Likers(ctx context.Context, postID int64, limit, offset int) ([]Liker, error)
	LikedPosts(ctx context.Context, userID int64, limit, offset int) ([]Post, error)
}

// FeedRepository assembles a user's feed: own posts and posts of followed accounts,
// newest first with id ascending as the tie-break.
type FeedRepository interface {
	Page(ctx context.Context, userID int64, limit, offset int) ([]Post, error)
	After(ctx context.Context, userID int64, cursor FeedCursor, limit int) ([]Post, error)
}

// EventPublisher accepts committed domain events. Publish must not block the caller on the broker.
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}
