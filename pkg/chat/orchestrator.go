// Package chat chains transcription, language-model completion, and voice
// synthesis into one conversational turn per request. The language model is
// best-effort: when it is unreachable the persona's canned replies keep the
// conversation going. Synthesis failure is terminal for a turn.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/odia-ai/voicegate/pkg/agent"
	"github.com/odia-ai/voicegate/pkg/provider"
	"github.com/odia-ai/voicegate/pkg/voice"

	"github.com/google/uuid"
)

// ErrNothingHeard terminates a turn whose audio input produced no usable
// transcript. No synthesis is attempted.
var ErrNothingHeard = errors.New("heard nothing")

const (
	defaultCompleteTimeout   = 30 * time.Second
	defaultTranscribeTimeout = 60 * time.Second

	replyMaxTokens   = 150
	replyTemperature = 0.6
)

type Orchestrator struct {
	completer   provider.Completer
	transcriber provider.Transcriber

	gateway  *voice.Gateway
	registry *agent.Registry
	log      *Log

	completeTimeout   time.Duration
	transcribeTimeout time.Duration

	logger *slog.Logger
}

type OrchestratorOptions struct {
	// Completer may be nil: every turn then uses the persona fallback table.
	Completer provider.Completer

	// Transcriber may be nil: audio input is then rejected.
	Transcriber provider.Transcriber

	CompleteTimeout   time.Duration
	TranscribeTimeout time.Duration

	Logger *slog.Logger
}

func NewOrchestrator(gateway *voice.Gateway, registry *agent.Registry, log *Log, options *OrchestratorOptions) *Orchestrator {
	if options == nil {
		options = new(OrchestratorOptions)
	}

	if options.CompleteTimeout <= 0 {
		options.CompleteTimeout = defaultCompleteTimeout
	}

	if options.TranscribeTimeout <= 0 {
		options.TranscribeTimeout = defaultTranscribeTimeout
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &Orchestrator{
		completer:   options.Completer,
		transcriber: options.Transcriber,

		gateway:  gateway,
		registry: registry,
		log:      log,

		completeTimeout:   options.CompleteTimeout,
		transcribeTimeout: options.TranscribeTimeout,

		logger: options.Logger.With(slog.String("component", "chat")),
	}
}

// Input is one turn's raw input: direct text, or audio to transcribe first.
type Input struct {
	Text string

	Audio *provider.File
}

type Reply struct {
	Text string

	AudioURL string
	Agent    agent.ID

	// CacheHit reports whether synthesis was served from the cache.
	CacheHit bool

	// Degraded reports that the reply came from the fallback table rather
	// than the language model.
	Degraded bool
}

// Converse runs one turn: (optional) transcription, completion, synthesis.
func (o *Orchestrator) Converse(ctx context.Context, id agent.ID, input Input) (*Reply, error) {
	persona, err := o.registry.Persona(id)

	if err != nil {
		return nil, &voice.ValidationError{Field: "agent", Reason: err.Error()}
	}

	userText, err := o.transcribe(ctx, input)

	if err != nil {
		return nil, err
	}

	replyText, degraded := o.compose(ctx, persona, userText)

	result, err := o.gateway.Synthesize(ctx, voice.Request{
		Text:  replyText,
		Agent: id,
	})

	if err != nil {
		// synthesis failure cannot be repaired by more fallback text
		return nil, err
	}

	o.log.Append(Turn{
		ID: uuid.NewString(),

		Agent:    id,
		UserText: userText,
		Reply:    replyText,

		CreatedAt: time.Now(),
	})

	return &Reply{
		Text: replyText,

		AudioURL: result.URL,
		Agent:    id,

		CacheHit: result.CacheHit,
		Degraded: degraded,
	}, nil
}

func (o *Orchestrator) transcribe(ctx context.Context, input Input) (string, error) {
	if input.Audio == nil {
		text := strings.TrimSpace(input.Text)

		if text == "" {
			return "", &voice.ValidationError{Field: "text", Reason: "must not be empty"}
		}

		return text, nil
	}

	if o.transcriber == nil {
		return "", &voice.ValidationError{Field: "audio", Reason: "transcription not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, o.transcribeTimeout)
	defer cancel()

	transcription, err := o.transcriber.Transcribe(ctx, *input.Audio, nil)

	if err != nil {
		o.logger.Warn("transcription failed", slog.Any("error", err))
		return "", ErrNothingHeard
	}

	text := strings.TrimSpace(transcription.Text)

	if text == "" {
		return "", ErrNothingHeard
	}

	return text, nil
}

// compose asks the language model for a reply and degrades to the persona's
// fallback table on any failure. Degradation never escalates past this
// method: conversational continuity beats reply fidelity.
func (o *Orchestrator) compose(ctx context.Context, persona *agent.Persona, userText string) (string, bool) {
	if o.completer == nil {
		return persona.Fallback(userText), true
	}

	ctx, cancel := context.WithTimeout(ctx, o.completeTimeout)
	defer cancel()

	maxTokens := replyMaxTokens
	temperature := float32(replyTemperature)

	completion, err := o.completer.Complete(ctx, []provider.Message{
		provider.SystemMessage(persona.Prompt),
		provider.UserMessage(userText),
	}, &provider.CompleteOptions{
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})

	if err != nil {
		o.logger.Warn("language model degraded",
			slog.String("agent", string(persona.ID)),
			slog.Any("error", err))

		return persona.Fallback(userText), true
	}

	if completion.Message == nil {
		return persona.Fallback(userText), true
	}

	reply := strings.TrimSpace(completion.Message.Text())

	if reply == "" {
		return persona.Fallback(userText), true
	}

	return reply, false
}
