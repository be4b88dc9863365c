// Package persistencetest provides an in-memory SQLite database with the service schema for tests.
package persistencetest

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"feedgraph/internal/core"
	"feedgraph/internal/persistence"
)

// New returns a migrated, empty database that is closed when the test ends.
func New(t *testing.T) *persistence.DB {
	t.Helper()

	gormDB, err := persistence.Open(sqlite.Open("file::memory:?_foreign_keys=on"))
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		sqlDB.Close() //nolint:errcheck
	})

	db := persistence.New(gormDB)
	require.NoError(t, db.AutoMigrate(t.Context()))

	return db
}

// User inserts a user named username.
func User(t *testing.T, db *persistence.DB, username string) core.User {
	t.Helper()

	user := persistence.User{
		Username: username,
		FullName: fmt.Sprintf("%s full name", username),
	}
	require.NoError(t, db.Conn(t.Context()).Create(&user).Error)

	return core.User{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
}

// Post inserts a post with an explicit creation time and returns its id.
func Post(t *testing.T, db *persistence.DB, authorID int64, content string, createdAt time.Time) int64 {
	t.Helper()

	post := persistence.Post{
		AuthorID:        authorID,
		Content:         content,
		CommentsEnabled: true,
		CreatedAt:       createdAt.UTC(),
		UpdatedAt:       createdAt.UTC(),
	}
	require.NoError(t, db.Conn(t.Context()).Create(&post).Error)

	return post.ID
}

func Follow(t *testing.T, db *persistence.DB, followerID, followingID int64, createdAt time.Time) {
	t.Helper()

	require.NoError(t, db.Conn(t.Context()).Create(&persistence.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   createdAt.UTC(),
	}).Error)
}

func Like(t *testing.T, db *persistence.DB, userID, postID int64, createdAt time.Time) {
	t.Helper()

	require.NoError(t, db.Conn(t.Context()).Create(&persistence.Like{
		UserID:    userID,
		PostID:    postID,
		CreatedAt: createdAt.UTC(),
	}).Error)
}

func Comment(t *testing.T, db *persistence.DB, authorID, postID int64, content string, createdAt time.Time) int64 {
	t.Helper()

	comment := persistence.Comment{
		AuthorID:  authorID,
		PostID:    postID,
		Content:   content,
		CreatedAt: createdAt.UTC(),
		UpdatedAt: createdAt.UTC(),
	}
	require.NoError(t, db.Conn(t.Context()).Create(&comment).Error)

	return comment.ID
}

// Count returns the number of rows in table.
func Count(t *testing.T, db *persistence.DB, table string, where string, args ...any) int64 {
	t.Helper()

	var count int64
	q := db.Conn(t.Context()).Table(table)
	if where != "" {
		q = q.Where(where, args...)
	}
	require.NoError(t, q.Count(&count).Error)

	return count
}

// Base is a fixed point in time the tests build timelines from.
var Base = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// At returns Base shifted by seconds.
func At(seconds int) time.Time {
	return Base.Add(time.Duration(seconds) * time.Second)
}
