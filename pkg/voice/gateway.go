// Package voice implements the synthesis gateway: request normalization,
// reference-voice selection, content-addressed caching, and network-aware
// post-processing in front of an opaque synthesis engine.
package voice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/odia-ai/voicegate/pkg/agent"
	"github.com/odia-ai/voicegate/pkg/provider"
	"github.com/odia-ai/voicegate/pkg/store"
	"github.com/odia-ai/voicegate/pkg/wav"
)

const (
	defaultTimeout = 120 * time.Second
	defaultWorkers = 2
)

type Gateway struct {
	synthesizer provider.Synthesizer
	resolver    *Resolver
	store       *store.Store

	timeout time.Duration
	slots   chan struct{}

	logger *slog.Logger
}

type GatewayOptions struct {
	// Timeout bounds one engine call.
	Timeout time.Duration

	// Workers caps concurrent engine calls so slow synthesis cannot stall
	// unrelated requests.
	Workers int

	Logger *slog.Logger
}

func NewGateway(synthesizer provider.Synthesizer, resolver *Resolver, artifacts *store.Store, options *GatewayOptions) *Gateway {
	if options == nil {
		options = new(GatewayOptions)
	}

	if options.Timeout <= 0 {
		options.Timeout = defaultTimeout
	}

	if options.Workers <= 0 {
		options.Workers = defaultWorkers
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &Gateway{
		synthesizer: synthesizer,
		resolver:    resolver,
		store:       artifacts,

		timeout: options.Timeout,
		slots:   make(chan struct{}, options.Workers),

		logger: options.Logger.With(slog.String("component", "gateway")),
	}
}

// Result is the public synthesis outcome: a reference to the artifact, never
// the artifact itself.
type Result struct {
	Key string
	URL string

	Agent    agent.ID
	CacheHit bool
}

// Synthesize validates the request, resolves its reference voice, and serves
// it from the cache or the engine. Concurrent misses on the same fingerprint
// are serialized so the engine runs at most once per fingerprint.
func (g *Gateway) Synthesize(ctx context.Context, req Request) (*Result, error) {
	req = req.Normalize()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	reference, err := g.resolver.Resolve(req)

	if err != nil {
		return nil, err
	}

	fingerprint := Fingerprint(req, reference)

	if entry, ok := g.store.Lookup(fingerprint); ok {
		return g.hit(req, entry), nil
	}

	lock := g.store.Key(fingerprint)
	lock.Lock()
	defer lock.Unlock()

	// another caller may have synthesized while we waited
	if entry, ok := g.store.Lookup(fingerprint); ok {
		return g.hit(req, entry), nil
	}

	entry, err := g.synthesize(ctx, req, reference, fingerprint)

	if err != nil {
		return nil, err
	}

	g.logger.Info("synthesized",
		slog.String("agent", string(req.Agent)),
		slog.String("key", entry.Key),
		slog.Int64("bytes", entry.Size))

	return &Result{
		Key: entry.Key,
		URL: "/audio/" + entry.Key,

		Agent: req.Agent,
	}, nil
}

func (g *Gateway) hit(req Request, entry store.Entry) *Result {
	g.logger.Debug("cache hit",
		slog.String("agent", string(req.Agent)),
		slog.String("key", entry.Key))

	return &Result{
		Key: entry.Key,
		URL: "/audio/" + entry.Key,

		Agent:    req.Agent,
		CacheHit: true,
	}
}

func (g *Gateway) synthesize(ctx context.Context, req Request, reference, fingerprint string) (store.Entry, error) {
	select {
	case g.slots <- struct{}{}:
	case <-ctx.Done():
		return store.Entry{}, &EngineError{Err: ctx.Err(), Transient: true}
	}

	defer func() { <-g.slots }()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	synthesis, err := g.synthesizer.Synthesize(ctx, agent.PreprocessText(req.Text), &provider.SynthesizeOptions{
		Language:  req.Language,
		Speed:     req.Speed,
		Reference: reference,
	})

	if err != nil {
		return store.Entry{}, &EngineError{Err: err, Transient: transient(err)}
	}

	samples, rate := Postprocess(synthesis.Samples, synthesis.SampleRate, req.Network)

	data, err := wav.Encode(samples, rate)

	if err != nil {
		return store.Entry{}, &EngineError{Err: err}
	}

	return g.store.Commit(fingerprint, data)
}

// permanenter marks engine errors that retrying cannot fix, such as requests
// the engine rejected as malformed.
type permanenter interface {
	Permanent() bool
}

// transient treats everything as retryable unless the engine said otherwise:
// timeouts and unreachable engines are transient by nature.
func transient(err error) bool {
	var p permanenter

	if errors.As(err, &p) {
		return !p.Permanent()
	}

	return true
}
