package api

import (
	"net/http"

	"github.com/odia-ai/voicegate/pkg/agent"
)

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJson(w, statusResponse{
		Service: "voicegate",
		Status:  "operational",

		Agents: agentNames(),
		Model:  h.modelName(),

		CacheSize: h.Store.Count(),

		Endpoints: []string{"/speak", "/audio/{key}", "/chat/{agent}", "/health", "/analytics"},
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, healthResponse{
		Status: "healthy",

		Ready: h.Synthesizer != nil,
		Model: h.modelName(),

		CacheEntries: h.Store.Count(),

		ChatReady: h.Completer != nil,
	})
}

func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	writeJson(w, analyticsResponse{
		TotalGenerations:   h.Store.Count(),
		TotalConversations: h.Log.Count(),

		AgentsActive: agentNames(),

		CostPerGeneration: costPerGeneration,
	})
}

func (h *Handler) modelName() string {
	if named, ok := h.Synthesizer.(interface{ Model() string }); ok {
		return named.Model()
	}

	return ""
}

func agentNames() []string {
	var names []string

	for _, id := range agent.All() {
		names = append(names, string(id))
	}

	return names
}
