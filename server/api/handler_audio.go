package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleAudio(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	data, err := h.Store.Fetch(key)

	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}

	// Artifacts are immutable once committed, so clients may cache freely.
	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Cache-Control", "public, max-age=86400")

	w.Write(data)
}
