package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopworks/storefront/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNoopSenderSendVerification(t *testing.T) {
	sender := NewNoopSender(testLogger())
	if err := sender.SendVerification(context.Background(), "user@example.com", "User", "token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewSenderWithoutSMTP(t *testing.T) {
	sender, err := newSender(senderParams{Config: &config.Config{}, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := sender.(*NoopSender); !ok {
		t.Fatalf("expected noop sender without smtp host, got %T", sender)
	}
}

func TestNewSMTPSender(t *testing.T) {
	sender, err := NewSMTPSender("localhost", 2525, "user", "pass", "noreply@example.com", "http://localhost:3000", testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.from != "noreply@example.com" {
		t.Fatalf("unexpected from address %q", sender.from)
	}
	if sender.frontendURL != "http://localhost:3000" {
		t.Fatalf("unexpected frontend url %q", sender.frontendURL)
	}
}
