package api

import (
	"net/http"

	"feedgraph/internal/core"
)

type createPostRequest struct {
	Content         string  `json:"content" validate:"required,max=5000"`
	MediaURL        *string `json:"media_url" validate:"omitempty,max=2048"`
	CommentsEnabled *bool   `json:"comments_enabled"`
}

type updatePostRequest struct {
	Content         *string `json:"content" validate:"omitempty,max=5000"`
	MediaURL        *string `json:"media_url" validate:"omitempty,max=2048"`
	CommentsEnabled *bool   `json:"comments_enabled"`
}

func (b *Backend) createPost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	commentsEnabled := req.CommentsEnabled == nil || *req.CommentsEnabled

	post, err := b.Service.CreatePost(r.Context(), actorFrom(r.Context()), req.Content, req.MediaURL, commentsEnabled)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (b *Backend) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := b.Service.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (b *Backend) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updatePostRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := b.Service.UpdatePost(r.Context(), id, actorFrom(r.Context()), core.PostUpdate{
		Content:         req.Content,
		MediaURL:        req.MediaURL,
		CommentsEnabled: req.CommentsEnabled,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (b *Backend) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := b.Service.DeletePost(r.Context(), id, actorFrom(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) like(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := b.Service.Like(r.Context(), actorFrom(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, http.StatusCreated, "liked")
}

func (b *Backend) unlike(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := b.Service.Unlike(r.Context(), actorFrom(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type postLikesResponse struct {
	core.Page[core.Liker]

	Liked *bool `json:"liked,omitempty"`
}

// postLikes pages the likers of a post. With an acting user it also tells whether they liked it.
func (b *Backend) postLikes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	req, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := b.Service.PostLikes(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := postLikesResponse{Page: page}
	if actorID, ok := parseActor(r); ok {
		liked, err := b.Service.HasLiked(r.Context(), actorID, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		resp.Liked = &liked
	}

	writeJSON(w, http.StatusOK, resp)
}
