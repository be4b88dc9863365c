package persistence

import (
	"time"
)

// Table models. They mirror migrations/ and are used for writes; reads scan into core types.

type User struct {
	ID        int64   `gorm:"primaryKey"`
	Username  string  `gorm:"not null;uniqueIndex"`
	Email     *string `gorm:"uniqueIndex"`
	FullName  string  `gorm:"not null;default:''"`
	CreatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

type Follow struct {
	FollowerID  int64     `gorm:"primaryKey;autoIncrement:false;check:chk_follows_not_self,follower_id <> following_id"`
	FollowingID int64     `gorm:"primaryKey;autoIncrement:false;index:idx_follows_following,priority:1"`
	CreatedAt   time.Time `gorm:"not null;index:idx_follows_following,priority:2,sort:desc"`

	Follower  *User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Following *User `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
}

func (Follow) TableName() string {
	return "follows"
}

type Post struct {
	ID              int64     `gorm:"primaryKey"`
	AuthorID        int64     `gorm:"not null;index:idx_posts_author,priority:1"`
	Content         string    `gorm:"not null"`
	MediaURL        *string   `gorm:"column:media_url"`
	CommentsEnabled bool      `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null;index:idx_posts_author,priority:2,sort:desc;index:idx_posts_created,sort:desc"`
	UpdatedAt       time.Time `gorm:"not null"`

	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string {
	return "posts"
}

type Comment struct {
	ID        int64     `gorm:"primaryKey"`
	AuthorID  int64     `gorm:"not null;index"`
	PostID    int64     `gorm:"not null;index:idx_comments_post,priority:1"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_comments_post,priority:2,sort:desc"`
	UpdatedAt time.Time `gorm:"not null"`

	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Post   *Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string {
	return "comments"
}

type Like struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false"`
	PostID    int64     `gorm:"primaryKey;autoIncrement:false;index:idx_likes_post,priority:1"`
	CreatedAt time.Time `gorm:"not null;index:idx_likes_post,priority:2,sort:desc"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post *Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (Like) TableName() string {
	return "likes"
}

// Models lists the table models in dependency order.
func Models() []any {
	return []any{&User{}, &Follow{}, &Post{}, &Comment{}, &Like{}}
}

// TableNames lists the tables in dependency order.
func TableNames() []string {
	return []string{
		User{}.TableName(),
		Follow{}.TableName(),
		Post{}.TableName(),
		Comment{}.TableName(),
		Like{}.TableName(),
	}
}
