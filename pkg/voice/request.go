package voice

import (
	"strings"

	"github.com/odia-ai/voicegate/pkg/agent"
)

type NetworkQuality string

const (
	NetworkAuto   NetworkQuality = "auto"
	NetworkPoor   NetworkQuality = "poor"
	NetworkMedium NetworkQuality = "medium"
	NetworkGood   NetworkQuality = "good"
)

// ParseNetworkQuality maps caller-supplied values, including the mobile
// generation aliases, onto the canonical qualities. Unknown values degrade
// to auto rather than failing: network hints are advisory.
func ParseNetworkQuality(val string) NetworkQuality {
	switch strings.ToLower(val) {
	case "2g", "poor":
		return NetworkPoor

	case "3g", "medium":
		return NetworkMedium

	case "good":
		return NetworkGood
	}

	return NetworkAuto
}

// Request is one synthesis request, immutable once normalized.
type Request struct {
	Text     string
	Agent    agent.ID
	Language string
	Speed    float64

	// Reference optionally points at an explicit speaker sample, overriding
	// the agent default.
	Reference string

	Network NetworkQuality
}

// Normalize fills defaulted fields and returns the result.
func (r Request) Normalize() Request {
	if r.Agent == "" {
		r.Agent = agent.Lexi
	}

	if r.Language == "" {
		r.Language = "en"
	}

	if r.Speed == 0 {
		r.Speed = 1.0
	}

	if r.Network == "" {
		r.Network = NetworkAuto
	}

	return r
}

// Validate checks a normalized request.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return &ValidationError{Field: "text", Reason: "must not be empty"}
	}

	if _, err := agent.Parse(string(r.Agent)); err != nil {
		return &ValidationError{Field: "agent", Reason: err.Error()}
	}

	if r.Speed <= 0 {
		return &ValidationError{Field: "speed", Reason: "must be positive"}
	}

	return nil
}
