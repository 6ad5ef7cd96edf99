package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/odia-ai/voicegate/pkg/agent"
	"github.com/odia-ai/voicegate/pkg/chat"
	"github.com/odia-ai/voicegate/pkg/provider"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	id, err := agent.Parse(chi.URLParam(r, "agent"))

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	input, err := h.readInput(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	started := time.Now()

	reply, err := h.Orchestrator.Converse(r.Context(), id, *input)

	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}

	cost := costPerGeneration

	if reply.CacheHit {
		cost = costCached
	}

	writeJson(w, chatResponse{
		ReplyText: reply.Text,

		AudioURL: reply.AudioURL,
		Agent:    string(reply.Agent),

		Cost:             cost,
		ProcessingTimeMS: time.Since(started).Milliseconds(),
	})
}

// readInput accepts either a JSON body with the user's text or a multipart
// form carrying a recorded audio file.
func (h *Handler) readInput(r *http.Request) (*chat.Input, error) {
	mediatype, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if strings.HasPrefix(mediatype, "multipart/") {
		file, header, err := r.FormFile("file")

		if err != nil {
			return nil, err
		}

		defer file.Close()

		data, err := io.ReadAll(file)

		if err != nil {
			return nil, err
		}

		contentType := header.Header.Get("Content-Type")

		if mediatype, _, err := mime.ParseMediaType(contentType); err == nil {
			contentType = mediatype
		}

		return &chat.Input{
			Audio: &provider.File{
				Name: header.Filename,

				Content:     data,
				ContentType: contentType,
			},
		}, nil
	}

	var req chatRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}

	return &chat.Input{
		Text: req.Text,
	}, nil
}
