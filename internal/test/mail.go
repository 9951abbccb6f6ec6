package test

import (
	"context"
	"sync"
)

// MailCall records a single verification email delivery attempt.
type MailCall struct {
	Email string
	Name  string
	Token string
}

// MailerStub captures verification emails instead of delivering them.
type MailerStub struct {
	mu    sync.Mutex
	Err   error
	Calls []MailCall
}

// SendVerification records the call and returns the configured error.
func (s *MailerStub) SendVerification(ctx context.Context, email, name, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, MailCall{Email: email, Name: name, Token: token})
	return s.Err
}

// Sent returns a copy of the recorded calls.
func (s *MailerStub) Sent() []MailCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]MailCall, len(s.Calls))
	copy(out, s.Calls)
	return out
}
