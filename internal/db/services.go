// Package db registers the Postgres connection and the stores built on it.
package db

import (
	"github.com/zhulik/pal"

	"feedgraph/internal/core"
	"feedgraph/internal/persistence"
	"feedgraph/internal/persistence/comments"
	"feedgraph/internal/persistence/feed"
	"feedgraph/internal/persistence/follows"
	"feedgraph/internal/persistence/likes"
	"feedgraph/internal/persistence/posts"
	"feedgraph/internal/persistence/users"
)

// Provide registers the connection only.
func Provide() pal.ServiceDef {
	return pal.ProvideList(
		pal.Provide[core.DB](&persistence.DB{}),
	)
}

// ProvideStores registers the connection and every repository.
func ProvideStores() pal.ServiceDef {
	return pal.ProvideList(
		Provide(),
		pal.Provide[core.UserRepository](&users.Repository{}),
		pal.Provide[core.FollowRepository](&follows.Repository{}),
		pal.Provide[core.PostRepository](&posts.Repository{}),
		pal.Provide[core.CommentRepository](&comments.Repository{}),
		pal.Provide[core.LikeRepository](&likes.Repository{}),
		pal.Provide[core.FeedRepository](&feed.Repository{}),
	)
}
