package voice

import (
	"os"
	"path/filepath"

	"github.com/odia-ai/voicegate/pkg/agent"
)

// Resolver selects the reference voice conditioning a synthesis request.
type Resolver struct {
	dir string

	defaults map[agent.ID]string
}

// NewResolver builds a resolver over a reference directory. Per-agent default
// filenames come from the persona registry.
func NewResolver(dir string, registry *agent.Registry) *Resolver {
	defaults := make(map[agent.ID]string)

	for _, id := range agent.All() {
		if p, err := registry.Persona(id); err == nil && p.Reference != "" {
			defaults[id] = filepath.Join(dir, p.Reference)
		}
	}

	return &Resolver{
		dir: dir,

		defaults: defaults,
	}
}

// Resolve applies the precedence rules: an explicit reference that exists
// wins, then the agent default, then failure. Missing defaults are a
// configuration error and are never silently substituted.
func (r *Resolver) Resolve(req Request) (string, error) {
	if req.Reference != "" {
		if _, err := os.Stat(req.Reference); err == nil {
			return req.Reference, nil
		}
	}

	path, ok := r.defaults[req.Agent]

	if !ok {
		return "", &MissingReferenceError{Agent: req.Agent}
	}

	if _, err := os.Stat(path); err != nil {
		return "", &MissingReferenceError{Agent: req.Agent, Path: path}
	}

	return path, nil
}
