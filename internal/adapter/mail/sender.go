package mail

import (
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender delivers verification messages through an SMTP relay.
type SMTPSender struct {
	client      *gomail.Client
	from        string
	frontendURL string
	logger      *slog.Logger
}

// NewSMTPSender dials nothing; the connection is established per message.
func NewSMTPSender(host string, port int, user, pass, from, frontendURL string, logger *slog.Logger) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if user != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(user),
			gomail.WithPassword(pass),
		)
	}
	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPSender{client: client, from: from, frontendURL: frontendURL, logger: logger}, nil
}

// SendVerification emails the account verification link.
func (s *SMTPSender) SendVerification(ctx context.Context, email, name, token string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject("Verify your email address")

	link := fmt.Sprintf("%s/verify-email?token=%s", s.frontendURL, token)
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"Hello %s,\n\nPlease confirm your email address by opening the link below:\n\n%s\n\nThe link expires in 24 hours.\n", name, link))

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send verification mail: %w", err)
	}
	s.logger.Info("verification email sent", slog.String("email", email))
	return nil
}

// NoopSender is used when no SMTP relay is configured. Deliveries are logged
// and dropped.
type NoopSender struct {
	logger *slog.Logger
}

// NewNoopSender constructs NoopSender.
func NewNoopSender(logger *slog.Logger) *NoopSender {
	return &NoopSender{logger: logger}
}

// SendVerification logs the would-be delivery.
func (s *NoopSender) SendVerification(ctx context.Context, email, name, token string) error {
	s.logger.Info("smtp disabled, skipping verification email", slog.String("email", email))
	return nil
}
