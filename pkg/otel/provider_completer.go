package otel

import (
	"context"

	"github.com/odia-ai/voicegate/pkg/provider"

	"go.opentelemetry.io/otel"
)

type Completer interface {
	Observable
	provider.Completer
}

type observableCompleter struct {
	model    string
	provider string

	completer provider.Completer
}

func NewCompleter(provider, model string, p provider.Completer) Completer {
	return &observableCompleter{
		completer: p,

		model:    model,
		provider: provider,
	}
}

func (p *observableCompleter) otelSetup() {
}

func (p *observableCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "chat "+p.model)
	defer span.End()

	result, err := p.completer.Complete(ctx, messages, options)

	return result, err
}
