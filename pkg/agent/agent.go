// Package agent defines the conversational identities served by the voice
// gateway: their system prompts, default reference voices, and the canned
// replies used when the language model is unavailable.
package agent

import (
	"errors"
	"fmt"
	"strings"
)

type ID string

const (
	Lexi  ID = "lexi"
	Miss  ID = "miss"
	Atlas ID = "atlas"
	Legal ID = "legal"
)

var ErrUnknownAgent = errors.New("unknown agent")

// Parse normalizes an agent name. Empty input selects the default agent.
func Parse(val string) (ID, error) {
	if val == "" {
		return Lexi, nil
	}

	id := ID(strings.ToLower(val))

	switch id {
	case Lexi, Miss, Atlas, Legal:
		return id, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAgent, val)
}

// All lists the known agents in a stable order.
func All() []ID {
	return []ID{Lexi, Miss, Atlas, Legal}
}

// Fallback is one (keyword, reply) pair of a persona's degraded-mode table.
type Fallback struct {
	Keyword string
	Reply   string
}

// Persona is the static per-agent configuration, loaded once at startup and
// shared read-only across requests.
type Persona struct {
	ID ID

	Prompt    string
	Reference string

	Fallbacks    []Fallback
	DefaultReply string
}

// Fallback returns the canned reply for the given user text: the first table
// entry whose keyword occurs in the lowercased text wins, otherwise the
// persona's default reply.
func (p *Persona) Fallback(text string) string {
	lower := strings.ToLower(text)

	for _, f := range p.Fallbacks {
		if strings.Contains(lower, f.Keyword) {
			return f.Reply
		}
	}

	return p.DefaultReply
}

// Registry resolves personas by agent id.
type Registry struct {
	personas map[ID]*Persona
}

func NewRegistry(personas ...*Persona) *Registry {
	r := &Registry{
		personas: make(map[ID]*Persona),
	}

	for _, p := range personas {
		r.personas[p.ID] = p
	}

	return r
}

func (r *Registry) Persona(id ID) (*Persona, error) {
	if p, ok := r.personas[id]; ok {
		return p, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, id)
}
