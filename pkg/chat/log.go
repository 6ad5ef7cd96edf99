package chat

import (
	"sync"
	"time"

	"github.com/odia-ai/voicegate/pkg/agent"
)

// Turn is one completed conversation round. Turns are appended once, never
// mutated; the log exists for diagnostics only.
type Turn struct {
	ID string

	Agent    agent.ID
	UserText string
	Reply    string

	CreatedAt time.Time
}

type Log struct {
	mu    sync.Mutex
	turns []Turn
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(turn Turn) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.turns = append(l.turns, turn)
}

func (l *Log) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.turns)
}

// Turns returns a snapshot copy of the log.
func (l *Log) Turns() []Turn {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Turn, len(l.turns))
	copy(out, l.turns)

	return out
}
