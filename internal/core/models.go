package core

import (
	"time"
)

// User is the identity of an account. Owned by the identity store, read-only to the rest of the core.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// FollowStats holds the two independent cardinalities of a user's follow edges.
type FollowStats struct {
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
}

// Post is a post enriched with its author identity and the derived counts.
type Post struct {
	ID              int64     `json:"id"`
	AuthorID        int64     `json:"author_id"`
	Content         string    `json:"content"`
	MediaURL        *string   `json:"media_url"`
	CommentsEnabled bool      `json:"comments_enabled"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	LikesCount    int64  `json:"likes_count"`
	CommentsCount int64  `json:"comments_count"`
}

type NewPost struct {
	AuthorID        int64
	Content         string
	MediaURL        *string
	CommentsEnabled bool
}

// PostUpdate is a partial update, nil fields are left untouched.
type PostUpdate struct {
	Content         *string `json:"content"`
	MediaURL        *string `json:"media_url"`
	CommentsEnabled *bool   `json:"comments_enabled"`
}

func (u PostUpdate) Empty() bool {
	return u.Content == nil && u.MediaURL == nil && u.CommentsEnabled == nil
}

// Comment is a comment enriched with the commenter's username.
type Comment struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	PostID    int64     `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string `json:"username"`
}

// Liker is a user who liked a post.
type Liker struct {
	User
	LikedAt time.Time `json:"liked_at"`
}
