package notifications

import (
	"github.com/twilio/twilio-go"
	"go.uber.org/zap"

	"github.com/you/regsvc/domain"
)

// SMTPConfig holds the email transport settings.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// TwilioConfig holds the SMS transport settings.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// Gateway implements domain.Notifier, delivering verification codes over
// SMTP email and Twilio SMS. Either transport left unconfigured degrades to
// a logged mock send so local runs work without credentials.
type Gateway struct {
	smtp   SMTPConfig
	twilio TwilioConfig
	client *twilio.RestClient
	logger *zap.Logger
}

// NewGateway creates a notification gateway.
func NewGateway(smtp SMTPConfig, tw TwilioConfig, logger *zap.Logger) domain.Notifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: tw.AccountSID,
		Password: tw.AuthToken,
	})

	return &Gateway{
		smtp:   smtp,
		twilio: tw,
		client: client,
		logger: logger,
	}
}

var _ domain.Notifier = (*Gateway)(nil)
