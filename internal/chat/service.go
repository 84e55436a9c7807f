package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"muaiadhadad.me/portfolio/internal/llm"
	"muaiadhadad.me/portfolio/internal/profile"
)

// ErrNotConfigured is returned when no upstream credential was configured.
// Every chat request fails with it until the credential is supplied.
var ErrNotConfigured = errors.New("chat upstream credential is not configured")

// DefaultTemperature applies when the client sends none.
const DefaultTemperature = 0.3

// Delta is one streamed fragment of the assistant's reply.
type Delta struct {
	Content string
}

// Service relays a conversation to the completion upstream with the fixed
// instruction prompt and the live profile context prepended.
//
// Stream returns a single-producer channel of in-order deltas plus an error
// channel that carries at most one mid-stream failure. Failures before any
// token arrives are returned directly. Cancelling ctx unwinds the producer
// and releases the upstream connection.
type Service interface {
	Stream(ctx context.Context, msgs []llm.Message, temperature *float64) (<-chan Delta, <-chan error, error)
}

type service struct {
	llm     llm.Client // nil when no credential is configured
	profile profile.Service
}

func NewService(llmClient llm.Client, profileService profile.Service) Service {
	return &service{llm: llmClient, profile: profileService}
}

func (s *service) Stream(ctx context.Context, msgs []llm.Message, temperature *float64) (<-chan Delta, <-chan error, error) {
	if s.llm == nil {
		return nil, nil, ErrNotConfigured
	}

	profileContext, err := s.profile.Context(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("assembling chat context: %w", err)
	}

	outbound := assembleMessages(profileContext, msgs)

	temp := DefaultTemperature
	if temperature != nil {
		temp = *temperature
	}

	stream, err := s.llm.StreamChat(ctx, outbound, temp)
	if err != nil {
		return nil, nil, fmt.Errorf("requesting completion: %w", err)
	}

	deltas := make(chan Delta)
	errs := make(chan error, 1)

	go func() {
		defer close(deltas)
		defer func() {
			if err := stream.Close(); err != nil {
				slog.DebugContext(ctx, "closing completion stream", "error", err)
			}
		}()

		for stream.Next() {
			content := stream.Current()
			if content == "" {
				continue
			}
			select {
			case deltas <- Delta{Content: content}:
			case <-ctx.Done():
				return
			}
		}

		if err := stream.Err(); err != nil && ctx.Err() == nil {
			errs <- fmt.Errorf("relaying completion stream: %w", err)
		}
	}()

	return deltas, errs, nil
}

// assembleMessages builds the outbound list: instruction prompt, profile
// context, then the client's turns. Only user and assistant roles are
// trusted from the client; anything else is dropped.
func assembleMessages(profileContext string, clientMsgs []llm.Message) []llm.Message {
	outbound := make([]llm.Message, 0, len(clientMsgs)+2)
	outbound = append(outbound,
		llm.Message{Role: llm.RoleSystem, Content: instructionPrompt},
		llm.Message{Role: llm.RoleSystem, Content: profileContext},
	)
	for _, msg := range clientMsgs {
		if msg.Role != llm.RoleUser && msg.Role != llm.RoleAssistant {
			continue
		}
		outbound = append(outbound, msg)
	}
	return outbound
}
