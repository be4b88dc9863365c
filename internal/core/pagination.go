package core

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100

	// MaxOffset bounds (Page-1)*Limit so the offset never overflows.
	MaxOffset = math.MaxInt32
)

// PageRequest is a 1-indexed offset page.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize applies defaults: page 1, limit 20, limit capped at 100.
// Pages past MaxOffset are clamped to the last addressable one, which is always empty in practice.
func (r PageRequest) Normalize() PageRequest {
	if r.Page < 1 {
		r.Page = 1
	}
	r.Limit = NormalizeLimit(r.Limit)
	r.Page = min(r.Page, MaxOffset/r.Limit+1)
	return r
}

func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

func NormalizeLimit(limit int) int {
	if limit < 1 {
		return DefaultPageLimit
	}
	return min(limit, MaxPageLimit)
}

type Pagination struct {
	Page       int    `json:"page,omitempty"`
	Limit      int    `json:"limit"`
	HasMore    bool   `json:"hasMore"`
	NextCursor string `json:"next_cursor,omitempty"`
}

type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// NewPage builds a page from rows fetched with limit+1: the extra row only proves that more exist.
func NewPage[T any](rows []T, page, limit int) Page[T] {
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}
	if rows == nil {
		rows = []T{}
	}
	return Page[T]{
		Items: rows,
		Pagination: Pagination{
			Page:    page,
			Limit:   limit,
			HasMore: hasMore,
		},
	}
}

// FeedCursor is the sort key of the last feed item seen.
type FeedCursor struct {
	CreatedAt time.Time
	ID        int64
}

func CursorOf(post Post) FeedCursor {
	return FeedCursor{CreatedAt: post.CreatedAt, ID: post.ID}
}

func (c FeedCursor) Encode() string {
	raw := fmt.Sprintf("%d:%d", c.CreatedAt.UnixNano(), c.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeFeedCursor(s string) (FeedCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return FeedCursor{}, ErrInvalidCursor
	}

	nanos, id, ok := strings.Cut(string(raw), ":")
	if !ok {
		return FeedCursor{}, ErrInvalidCursor
	}

	ns, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return FeedCursor{}, ErrInvalidCursor
	}
	postID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || postID < 1 {
		return FeedCursor{}, ErrInvalidCursor
	}

	return FeedCursor{CreatedAt: time.Unix(0, ns).UTC(), ID: postID}, nil
}
