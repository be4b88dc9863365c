package api

import (
	"net/http"
)

// feed serves the acting user's feed. With a cursor it continues from there and ignores page.
func (b *Backend) feed(w http.ResponseWriter, r *http.Request) {
	req, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	actorID := actorFrom(r.Context())

	if cursor := r.URL.Query().Get("cursor"); cursor != "" {
		page, err := b.Service.FeedAfter(r.Context(), actorID, cursor, req.Limit)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
		return
	}

	page, err := b.Service.Feed(r.Context(), actorID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}
