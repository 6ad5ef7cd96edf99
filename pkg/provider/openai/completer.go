// Package openai adapts OpenAI-compatible backends ("choices"-style chat
// completions, Whisper transcription) to the provider interfaces. Any server
// speaking the OpenAI wire format works: the hosted API, LM Studio, vLLM.
package openai

import (
	"context"
	"errors"

	"github.com/odia-ai/voicegate/pkg/provider"

	"github.com/openai/openai-go/v3"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	completions openai.ChatCompletionService
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
		Config:      cfg,
		completions: openai.NewChatCompletionService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),

		Messages: convertMessages(messages),
	}

	if options.MaxTokens != nil {
		req.MaxTokens = openai.Int(int64(*options.MaxTokens))
	}

	if options.Temperature != nil {
		req.Temperature = openai.Float(float64(*options.Temperature))
	}

	completion, err := c.completions.New(ctx, req)

	if err != nil {
		return nil, convertError(err)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("completion contained no choices")
	}

	choice := completion.Choices[0]

	message := provider.Message{
		Role: provider.MessageRoleAssistant,

		Content: []provider.Content{
			provider.TextContent(choice.Message.Content),
		},
	}

	return &provider.Completion{
		ID:    completion.ID,
		Model: completion.Model,

		Message: &message,

		Usage: &provider.Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}, nil
}

func convertMessages(messages []provider.Message) []openai.ChatCompletionMessageParamUnion {
	var result []openai.ChatCompletionMessageParamUnion

	for _, m := range messages {
		switch m.Role {
		case provider.MessageRoleSystem:
			result = append(result, openai.SystemMessage(m.Text()))

		case provider.MessageRoleAssistant:
			result = append(result, openai.AssistantMessage(m.Text()))

		default:
			result = append(result, openai.UserMessage(m.Text()))
		}
	}

	return result
}

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		return apierr
	}

	return err
}
