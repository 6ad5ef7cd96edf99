package api

const (
	costPerGeneration = "₦0.10"
	costCached        = "₦0.00"
)

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type speakRequest struct {
	Text  string `json:"text"`
	Agent string `json:"agent,omitempty"`

	Language string  `json:"language,omitempty"`
	Speed    float64 `json:"speed,omitempty"`

	SpeakerWAV string `json:"speaker_wav,omitempty"`

	NetworkQuality string `json:"network_quality,omitempty"`
}

type speakResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`

	AudioURL string `json:"audio_url"`
	Agent    string `json:"agent"`

	CacheHit bool `json:"cache_hit"`

	Cost             string `json:"cost"`
	ProcessingTimeMS int64  `json:"processing_time_ms"`
}

type chatRequest struct {
	Text string `json:"text"`
}

type chatResponse struct {
	ReplyText string `json:"reply_text"`

	AudioURL string `json:"audio_url"`
	Agent    string `json:"agent"`

	Cost             string `json:"cost"`
	ProcessingTimeMS int64  `json:"processing_time_ms"`
}

type statusResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`

	Agents []string `json:"agents"`
	Model  string   `json:"model"`

	CacheSize int `json:"cache_size"`

	Endpoints []string `json:"endpoints"`
}

type healthResponse struct {
	Status string `json:"status"`

	Ready bool   `json:"ready"`
	Model string `json:"model"`

	CacheEntries int `json:"cache_entries"`

	ChatReady bool `json:"chat_ready"`
}

type analyticsResponse struct {
	TotalGenerations   int `json:"total_generations"`
	TotalConversations int `json:"total_conversations"`

	AgentsActive []string `json:"agents_active"`

	CostPerGeneration string `json:"cost_per_generation"`
}
