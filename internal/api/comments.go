package api

import (
	"net/http"
)

type commentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

func (b *Backend) createComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req commentRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := b.Service.CreateComment(r.Context(), actorFrom(r.Context()), postID, req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (b *Backend) postComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	req, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := b.Service.PostComments(r.Context(), postID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (b *Backend) getComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := b.Service.GetComment(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

func (b *Backend) updateComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req commentRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := b.Service.UpdateComment(r.Context(), id, actorFrom(r.Context()), req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

func (b *Backend) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := b.Service.DeleteComment(r.Context(), id, actorFrom(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
