package notifications

import (
	"context"
	"errors"
	"fmt"

	"hauling_pros/internal/config"
	"hauling_pros/internal/domain/entities"
	"hauling_pros/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

var ErrSMTPNotConfigured = errors.New("smtp not configured")
var ErrMissingRecipient = errors.New("missing recipient")

type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender delivers customer and admin mail through an SMTP relay.
type SMTPSender struct {
	dialer     mailDialer
	sender     string
	adminEmail string
}

var _ interfaces.INotificationSender = (*SMTPSender)(nil)

func NewSMTPSender(cfg config.SMTPConfig, adminEmail string) (*SMTPSender, error) {
	if cfg.Host == "" || cfg.Sender == "" {
		return nil, ErrSMTPNotConfigured
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	log.Info().Str("host", cfg.Host).Int("port", cfg.Port).Msg("[notification][smtp] sender initialized")
	return &SMTPSender{dialer: d, sender: cfg.Sender, adminEmail: adminEmail}, nil
}

func (s *SMTPSender) SendEstimateReady(ctx context.Context, e entities.Estimate, confirmURL string) error {
	data := newTemplateData(e)
	data.ConfirmURL = confirmURL
	return s.send(ctx, e.Email, estimateReadyTemplate, data, e.ID)
}

func (s *SMTPSender) SendAdminNewEstimate(ctx context.Context, e entities.Estimate) error {
	return s.send(ctx, s.adminEmail, adminNewEstimateTemplate, newTemplateData(e), e.ID)
}

func (s *SMTPSender) SendAppointmentConfirmed(ctx context.Context, e entities.Estimate, paymentLink string) error {
	data := newTemplateData(e)
	data.PaymentLink = paymentLink
	return s.send(ctx, e.Email, appointmentConfirmedTemplate, data, e.ID)
}

func (s *SMTPSender) send(ctx context.Context, to string, tpl mailTemplate, data templateData, estimateID string) error {
	if to == "" {
		return ErrMissingRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := tpl.render(data)
	if err != nil {
		return fmt.Errorf("render mail: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Error().Err(err).Str("estimate_id", estimateID).Str("subject", msg.Subject).Msg("[notification][smtp] send failed")
		return err
	}
	log.Info().Str("estimate_id", estimateID).Str("subject", msg.Subject).Msg("[notification][smtp] sent")
	return nil
}
