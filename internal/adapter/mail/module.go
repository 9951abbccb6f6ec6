package mail

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/shopworks/storefront/internal/config"
	"github.com/shopworks/storefront/internal/usecase"
)

// Module exposes the mail sender implementation to the fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) (usecase.VerificationMailer, error) {
	if p.Config.SMTPHost == "" {
		return NewNoopSender(p.Logger), nil
	}
	return NewSMTPSender(p.Config.SMTPHost, p.Config.SMTPPort, p.Config.SMTPUser, p.Config.SMTPPass,
		p.Config.SMTPFrom, p.Config.FrontendURL, p.Logger)
}
