package handler_test

import (
	"context"
	"time"

	"muaiadhadad.me/portfolio/internal/chat"
	"muaiadhadad.me/portfolio/internal/contact"
	"muaiadhadad.me/portfolio/internal/llm"
)

type mockChatService struct {
	streamFn func(ctx context.Context, msgs []llm.Message, temperature *float64) (<-chan chat.Delta, <-chan error, error)
	msgs     []llm.Message
	temp     *float64
}

func (m *mockChatService) Stream(ctx context.Context, msgs []llm.Message, temperature *float64) (<-chan chat.Delta, <-chan error, error) {
	m.msgs = msgs
	m.temp = temperature
	if m.streamFn != nil {
		return m.streamFn(ctx, msgs, temperature)
	}
	deltas := make(chan chat.Delta)
	close(deltas)
	return deltas, make(chan error, 1), nil
}

// streamOf builds a pre-completed delta stream, optionally ending in err.
func streamOf(err error, contents ...string) (<-chan chat.Delta, <-chan error) {
	deltas := make(chan chat.Delta, len(contents))
	errs := make(chan error, 1)
	for _, c := range contents {
		deltas <- chat.Delta{Content: c}
	}
	if err != nil {
		errs <- err
	}
	close(deltas)
	return deltas, errs
}

type mockContactService struct {
	notifyFn func(ctx context.Context, sub contact.Submission) error
	subs     []contact.Submission
}

func (m *mockContactService) Notify(ctx context.Context, sub contact.Submission) error {
	m.subs = append(m.subs, sub)
	if m.notifyFn != nil {
		return m.notifyFn(ctx, sub)
	}
	return nil
}

type mockSigner struct {
	signFn func(ctx context.Context, key string, expiry time.Duration) (string, error)
	keys   []string
	expiry time.Duration
}

func (m *mockSigner) SignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	m.keys = append(m.keys, key)
	m.expiry = expiry
	if m.signFn != nil {
		return m.signFn(ctx, key, expiry)
	}
	return "https://storage.example/" + key + "?signed", nil
}
