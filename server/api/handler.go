// Package api exposes the voice gateway over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/odia-ai/voicegate/config"
	"github.com/odia-ai/voicegate/pkg/chat"
	"github.com/odia-ai/voicegate/pkg/store"
	"github.com/odia-ai/voicegate/pkg/voice"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/", h.handleStatus)
	r.Get("/health", h.handleHealth)
	r.Get("/analytics", h.handleAnalytics)

	r.Post("/speak", h.handleSpeak)
	r.Get("/audio/{key}", h.handleAudio)

	r.Post("/chat/{agent}", h.handleChat)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(errorResponse{
		Status: "error",
		Error:  text,
	})
}

// errorStatus maps domain failures to HTTP codes. Caller mistakes land on
// 400, a rejected synthesis on 500 and an unreachable engine on 502.
func errorStatus(err error) int {
	var validation *voice.ValidationError

	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}

	var missing *voice.MissingReferenceError

	if errors.As(err, &missing) {
		return http.StatusBadRequest
	}

	if errors.Is(err, chat.ErrNothingHeard) {
		return http.StatusBadRequest
	}

	if store.NotFound(err) {
		return http.StatusNotFound
	}

	var engine *voice.EngineError

	if errors.As(err, &engine) {
		if engine.Transient {
			return http.StatusBadGateway
		}

		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
