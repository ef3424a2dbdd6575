package notifications

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/you/regsvc/domain"
)

// SendEmailRequest implements domain.Notifier. A rejected or failed send is
// reported as an undelivered outcome, not an error: the caller decides what
// an undelivered code means.
func (g *Gateway) SendEmailRequest(ctx context.Context, email, code string) (domain.DeliveryOutcome, error) {
	if strings.TrimSpace(email) == "" {
		return domain.DeliveryOutcome{Delivered: false, Reason: "empty recipient"}, nil
	}

	// If SMTP is not configured, log instead of sending
	if g.smtp.Host == "" || g.smtp.From == "" {
		g.logger.Info("[MOCK EMAIL] verification code",
			zap.String("to", email), zap.String("code", code))
		return domain.DeliveryOutcome{Delivered: true}, nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", g.smtp.From)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your verification code")
	m.SetBody("text/html", buildCodeBody(code))

	d := gomail.NewDialer(g.smtp.Host, g.smtp.Port, g.smtp.User, g.smtp.Pass)
	if err := d.DialAndSend(m); err != nil {
		g.logger.Warn("verification email not sent",
			zap.String("to", email), zap.Error(err))
		return domain.DeliveryOutcome{Delivered: false, Reason: err.Error()}, nil
	}

	g.logger.Info("verification email sent", zap.String("to", email))
	return domain.DeliveryOutcome{Delivered: true}, nil
}

func buildCodeBody(code string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <div style="max-width: 520px; margin: 0 auto; padding: 16px;">
    <h2>Email verification</h2>
    <p>Your verification code is:</p>
    <div style="font-size: 28px; font-weight: bold; letter-spacing: 3px;">%s</div>
    <p>If you did not request this, you can ignore this message.</p>
  </div>
</body>
</html>`, code)
}
