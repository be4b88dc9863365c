package feedclient

import "time"

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

type Post struct {
	ID              int64     `json:"id"`
	AuthorID        int64     `json:"author_id"`
	Content         string    `json:"content"`
	MediaURL        *string   `json:"media_url"`
	CommentsEnabled bool      `json:"comments_enabled"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Username        string    `json:"username"`
	FullName        string    `json:"full_name"`
	LikesCount      int64     `json:"likes_count"`
	CommentsCount   int64     `json:"comments_count"`
}

type Pagination struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	HasMore    bool   `json:"hasMore"`
	NextCursor string `json:"next_cursor"`
}

type FeedPage struct {
	Items      []Post     `json:"items"`
	Pagination Pagination `json:"pagination"`
}
