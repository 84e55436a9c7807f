package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
)

// Client streams chat completions from an OpenAI-compatible endpoint.
type Client interface {
	StreamChat(ctx context.Context, msgs []Message, temperature float64) (Stream, error)
	Model() string
}

// Stream yields content deltas in upstream order. Close releases the
// underlying connection and is safe after the stream is drained.
type Stream interface {
	Next() bool
	Current() string
	Err() error
	Close() error
}

type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type client struct {
	openai openai.Client
	model  string
}

func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = "openai/gpt-5"
	}

	return &client{
		openai: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// StreamChat opens the upstream completion stream. Requests rejected before
// any tokens arrive (bad credential, bad model) surface as the returned
// error rather than through the stream.
func (c *client) StreamChat(ctx context.Context, msgs []Message, temperature float64) (Stream, error) {
	params := openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    c.convertMessages(msgs),
		Temperature: openai.Float(temperature),
	}

	raw := c.openai.Chat.Completions.NewStreaming(ctx, params)

	s := &chunkStream{raw: raw}
	if raw.Next() {
		s.pending = true
	} else {
		if err := raw.Err(); err != nil {
			_ = raw.Close()
			return nil, fmt.Errorf("opening completion stream: %w", err)
		}
		s.done = true
	}

	slog.DebugContext(ctx, "completion stream opened",
		"model", c.model, "messages", len(msgs))
	return s, nil
}

func (c *client) Model() string {
	return c.model
}

func (c *client) convertMessages(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))

	for _, msg := range msgs {
		switch msg.Role {
		case RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content))
		case RoleUser:
			result = append(result, openai.UserMessage(msg.Content))
		case RoleAssistant:
			result = append(result, openai.AssistantMessage(msg.Content))
		}
	}

	return result
}

// chunkStream adapts the SDK's chunk stream to plain content deltas.
// The first chunk is read eagerly by StreamChat, so it may be pending here.
type chunkStream struct {
	raw     *ssestream.Stream[openai.ChatCompletionChunk]
	current string
	pending bool
	done    bool
}

func (s *chunkStream) Next() bool {
	if s.done {
		return false
	}
	if s.pending {
		s.pending = false
		s.current = chunkDelta(s.raw.Current())
		return true
	}
	if s.raw.Next() {
		s.current = chunkDelta(s.raw.Current())
		return true
	}
	s.done = true
	return false
}

func (s *chunkStream) Current() string {
	return s.current
}

func (s *chunkStream) Err() error {
	return s.raw.Err()
}

func (s *chunkStream) Close() error {
	return s.raw.Close()
}

func chunkDelta(chunk openai.ChatCompletionChunk) string {
	if len(chunk.Choices) == 0 {
		return ""
	}
	return chunk.Choices[0].Delta.Content
}
