package notifications

import (
	"context"
	"fmt"

	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/you/regsvc/domain"
)

// SendRequest implements domain.Notifier, delivering the code by SMS.
func (g *Gateway) SendRequest(ctx context.Context, phoneNumber, otp string) (domain.DeliveryOutcome, error) {
	// If credentials are not configured, log instead of sending
	if g.twilio.FromNumber == "" {
		g.logger.Info("[MOCK SMS] verification code",
			zap.String("to", phoneNumber), zap.String("code", otp))
		return domain.DeliveryOutcome{Delivered: true}, nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phoneNumber)
	params.SetFrom(g.twilio.FromNumber)
	params.SetBody(fmt.Sprintf("Your verification code is: %s", otp))

	if _, err := g.client.Api.CreateMessage(params); err != nil {
		g.logger.Warn("verification SMS not sent",
			zap.String("to", phoneNumber), zap.Error(err))
		return domain.DeliveryOutcome{Delivered: false, Reason: err.Error()}, nil
	}

	g.logger.Info("verification SMS sent", zap.String("to", phoneNumber))
	return domain.DeliveryOutcome{Delivered: true}, nil
}
