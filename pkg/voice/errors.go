package voice

import (
	"fmt"

	"github.com/odia-ai/voicegate/pkg/agent"
)

// ValidationError reports a caller-fixable problem with a request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// MissingReferenceError reports that no usable reference voice exists for an
// agent. This is a deployment problem, not a transient condition.
type MissingReferenceError struct {
	Agent agent.ID
	Path  string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("missing reference voice for agent %q: %s (add the file or pass speaker_wav)", e.Agent, e.Path)
}

// EngineError wraps a failure of the external synthesis engine. Transient
// distinguishes unreachable/timed-out engines from requests the engine
// rejected outright.
type EngineError struct {
	Err       error
	Transient bool
}

func (e *EngineError) Error() string {
	return "synthesis engine: " + e.Err.Error()
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
