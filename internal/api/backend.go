package api

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"feedgraph/internal/social"
)

// Backend holds the HTTP handlers of the v1 API.
type Backend struct {
	Logger  *slog.Logger
	Service *social.Service
}

func (b *Backend) Init(context.Context) error {
	b.Logger = b.Logger.With("component", "api.Backend")
	return nil
}

func (b *Backend) Routes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", b.createUser)
		r.Get("/search", b.searchUsers)
		r.Get("/by-username/{username}", b.getUserByUsername)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", b.getUser)
			r.Get("/followers", b.followers)
			r.Get("/following", b.following)
			r.Get("/follow-status", b.followStatus)
			r.Get("/posts", b.userPosts)
			r.Get("/likes", b.likedPosts)

			r.With(requireActor).Post("/follow", b.follow)
			r.With(requireActor).Delete("/follow", b.unfollow)
		})
	})

	r.Route("/posts", func(r chi.Router) {
		r.With(requireActor).Post("/", b.createPost)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", b.getPost)
			r.With(requireActor).Patch("/", b.updatePost)
			r.With(requireActor).Delete("/", b.deletePost)

			r.Get("/comments", b.postComments)
			r.With(requireActor).Post("/comments", b.createComment)

			r.Get("/likes", b.postLikes)
			r.With(requireActor).Post("/likes", b.like)
			r.With(requireActor).Delete("/likes", b.unlike)
		})
	})

	r.Route("/comments/{id}", func(r chi.Router) {
		r.Get("/", b.getComment)
		r.With(requireActor).Patch("/", b.updateComment)
		r.With(requireActor).Delete("/", b.deleteComment)
	})

	r.With(requireActor).Get("/feed", b.feed)
}
