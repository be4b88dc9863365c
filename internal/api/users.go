package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"feedgraph/internal/core"
)

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	FullName string `json:"full_name" validate:"max=100"`
}

type followStatusResponse struct {
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
	IsFollowing    *bool `json:"is_following,omitempty"`
}

func (b *Backend) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := b.Service.CreateUser(r.Context(), req.Username, req.Email, req.FullName)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (b *Backend) searchUsers(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	found, err := b.Service.SearchUsers(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items[core.User]{Items: found})
}

func (b *Backend) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := b.Service.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (b *Backend) getUserByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := b.Service.GetUserByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (b *Backend) follow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := b.Service.Follow(r.Context(), actorFrom(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, http.StatusCreated, "followed")
}

func (b *Backend) unfollow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := b.Service.Unfollow(r.Context(), actorFrom(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) followers(w http.ResponseWriter, r *http.Request) {
	b.userList(w, r, b.Service.Followers)
}

func (b *Backend) following(w http.ResponseWriter, r *http.Request) {
	b.userList(w, r, b.Service.Following)
}

func (b *Backend) userList(w http.ResponseWriter, r *http.Request, list func(context.Context, int64) ([]core.User, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	users, err := list(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items[core.User]{Items: users})
}

// followStatus reports the follow counts of a user and, when the request names an acting user,
// whether that user follows them.
func (b *Backend) followStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	stats, err := b.Service.FollowStatus(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := followStatusResponse{
		FollowersCount: stats.FollowersCount,
		FollowingCount: stats.FollowingCount,
	}

	if actorID, ok := parseActor(r); ok {
		following, err := b.Service.IsFollowing(r.Context(), actorID, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		resp.IsFollowing = &following
	}

	writeJSON(w, http.StatusOK, resp)
}

func (b *Backend) userPosts(w http.ResponseWriter, r *http.Request) {
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

	page, err := b.Service.UserPosts(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (b *Backend) likedPosts(w http.ResponseWriter, r *http.Request) {
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

	page, err := b.Service.LikedPosts(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}
