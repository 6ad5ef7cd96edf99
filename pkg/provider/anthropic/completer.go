// Package anthropic adapts the Anthropic Messages API ("messages"-style
// content blocks) to the provider completer interface.
package anthropic

import (
	"context"
	"strings"

	"github.com/odia-ai/voicegate/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ provider.Completer = (*Completer)(nil)

const defaultMaxTokens = 256

type Completer struct {
	*Config
	messages anthropic.MessageService
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req := anthropic.MessageNewParams{
		Model: anthropic.Model(c.model),

		MaxTokens: defaultMaxTokens,
	}

	if options.MaxTokens != nil {
		req.MaxTokens = int64(*options.MaxTokens)
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(float64(*options.Temperature))
	}

	var system []anthropic.TextBlockParam

	for _, m := range messages {
		switch m.Role {
		case provider.MessageRoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: m.Text()})

		case provider.MessageRoleAssistant:
			req.Messages = append(req.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Text())))

		default:
			req.Messages = append(req.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Text())))
		}
	}

	if len(system) > 0 {
		req.System = system
	}

	message, err := c.messages.New(ctx, req)

	if err != nil {
		return nil, err
	}

	var text strings.Builder

	for _, block := range message.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(variant.Text)
		}
	}

	result := provider.Message{
		Role: provider.MessageRoleAssistant,

		Content: []provider.Content{
			provider.TextContent(text.String()),
		},
	}

	return &provider.Completion{
		ID:    message.ID,
		Model: c.model,

		Message: &result,

		Usage: &provider.Usage{
			InputTokens:  int(message.Usage.InputTokens),
			OutputTokens: int(message.Usage.OutputTokens),
		},
	}, nil
}
