package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/odia-ai/voicegate/pkg/agent"
	"github.com/odia-ai/voicegate/pkg/voice"
)

func (h *Handler) handleSpeak(w http.ResponseWriter, r *http.Request) {
	var req speakRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := agent.Parse(req.Agent)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	started := time.Now()

	result, err := h.Gateway.Synthesize(r.Context(), voice.Request{
		Text:     req.Text,
		Agent:    id,
		Language: req.Language,
		Speed:    req.Speed,

		Reference: req.SpeakerWAV,

		Network: voice.ParseNetworkQuality(req.NetworkQuality),
	})

	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}

	message := "generated"
	cost := costPerGeneration

	if result.CacheHit {
		message = "cache"
		cost = costCached
	}

	writeJson(w, speakResponse{
		Status:  "SUCCESS",
		Message: message,

		AudioURL: result.URL,
		Agent:    string(result.Agent),

		CacheHit: result.CacheHit,

		Cost:             cost,
		ProcessingTimeMS: time.Since(started).Milliseconds(),
	})
}
