package service

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"ivms/internal/entities"
)

type notifierClient interface {
	SendEmail(toEmail, toName, subject, plainText, htmlContent string) error
	SendSMS(toNumber, body string) error
}

// SenderService composes and dispatches outbound notifications. Sends run
// in the background; failures are logged and never surfaced to the caller.
type SenderService struct {
	notifier notifierClient
}

func NewSenderService(notifier notifierClient) *SenderService {
	return &SenderService{notifier: notifier}
}

// SendBookingDecisionEmail notifies the requester that their booking was
// approved or rejected.
func (s *SenderService) SendBookingDecisionEmail(booking entities.BookingResponse) {
	data := entities.BookingEmailData{
		Name:            booking.Name,
		Room:            booking.Room,
		Floor:           booking.Floor,
		Date:            booking.Date,
		TimeRange:       booking.TimeRange,
		Status:          string(booking.Status),
		RejectionReason: booking.RejectionReason,
		CurrentYear:     time.Now().Year(),
	}

	subject := fmt.Sprintf("Your booking for %s on %s is %s", booking.Room, booking.Date, data.Status)

	plainText := fmt.Sprintf(
		"Hello %s,\n\nYour hall booking has been %s.\n\n"+
			"Booking details:\n"+
			"Hall: %s (Floor %s)\n"+
			"Date: %s\n"+
			"Time: %s\n",
		data.Name, data.Status, data.Room, data.Floor, data.Date, data.TimeRange,
	)
	if data.RejectionReason != "" {
		plainText += fmt.Sprintf("Reason: %s\n", data.RejectionReason)
	}
	plainText += "\nThank you,\nReception"

	htmlBody := renderBookingEmail(data)

	go func() {
		if err := s.notifier.SendEmail(booking.Email, booking.Name, subject, plainText, htmlBody); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to send booking decision email")
		}
	}()
}

// SendVisitorWelcomeSMS confirms a visitor's registration with their
// entry number.
func (s *SenderService) SendVisitorWelcomeSMS(visitor entities.VisitorResponse) {
	body := fmt.Sprintf("Welcome %s! Your visitor entry number is %d. Please show this at the reception desk.",
		visitor.Name, visitor.SlNumber)

	go func() {
		if err := s.notifier.SendSMS(visitor.Phone, body); err != nil {
			log.Error().Err(err).Str("visitor_id", visitor.ID).Msg("failed to send visitor welcome sms")
		}
	}()
}

func renderBookingEmail(data entities.BookingEmailData) string {
	tmplPath := filepath.Join("internal", "templates", "booking_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Error().Err(err).Str("path", tmplPath).Msg("failed to parse booking email template")
		return ""
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Error().Err(err).Msg("failed to render booking email template")
		return ""
	}
	return buf.String()
}
