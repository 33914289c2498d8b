package service

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"ivms/internal/config"
)

// Notifier sends email via SendGrid and SMS via Twilio. Missing
// credentials are reported as errors so callers can log and move on;
// notifications are never allowed to fail a request.
type Notifier struct {
	cfg *config.Config
}

func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{cfg: cfg}
}

func (n *Notifier) SendEmail(toEmail, toName, subject, plainText, htmlContent string) error {
	if n.cfg.SendGrid.APIKey == "" || n.cfg.SendGrid.FromEmail == "" {
		return fmt.Errorf("sendgrid is not configured")
	}

	from := mail.NewEmail(n.cfg.SendGrid.FromName, n.cfg.SendGrid.FromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	client := sendgrid.NewSendClient(n.cfg.SendGrid.APIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email via sendgrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	log.Debug().Str("to", toEmail).Str("subject", subject).Msg("email sent")
	return nil
}

func (n *Notifier) SendSMS(toNumber, body string) error {
	t := n.cfg.Twilio
	if t.AccountSID == "" || t.AuthToken == "" || t.FromNumber == "" {
		return fmt.Errorf("twilio is not configured")
	}
	if !strings.HasPrefix(toNumber, "+") {
		log.Warn().Str("to", toNumber).Msg("sms destination is not in E.164 format")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   t.AccountSID,
		Password:   t.AuthToken,
		AccountSid: t.AccountSID,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(t.FromNumber)
	params.SetBody(body)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("sending sms via twilio: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		log.Debug().Str("to", toNumber).Str("sid", *resp.Sid).Msg("sms sent")
	}
	return nil
}
