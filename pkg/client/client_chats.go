package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

type ChatService struct {
	Options []RequestOption
}

func NewChatService(opts ...RequestOption) ChatService {
	return ChatService{
		Options: opts,
	}
}

type ChatRequest struct {
	Agent string `json:"-"`

	Text string `json:"text"`
}

type ChatReply struct {
	Text string

	AudioURL string
	Agent    string

	Cost string
}

func (r *ChatService) New(ctx context.Context, input ChatRequest, opts ...RequestOption) (*ChatReply, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	agent := input.Agent

	if agent == "" {
		agent = "lexi"
	}

	data, err := json.Marshal(input)

	if err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/chat/"+agent, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	var result struct {
		ReplyText string `json:"reply_text"`
		AudioURL  string `json:"audio_url"`
		Agent     string `json:"agent"`
		Cost      string `json:"cost"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &ChatReply{
		Text: result.ReplyText,

		AudioURL: result.AudioURL,
		Agent:    result.Agent,

		Cost: result.Cost,
	}, nil
}
