package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/suitopia/internal/config"
)

// Module exposes the mail sender to the fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) (Sender, error) {
	if p.Config.MailAPIKey == "" {
		p.Logger.Warn("MAIL_API_KEY is not set, notifications will be dropped")
		return Disabled{Logger: p.Logger}, nil
	}
	return NewHTTPClient(p.Config.MailAPIURL, p.Config.MailAPIKey, p.Logger)
}
