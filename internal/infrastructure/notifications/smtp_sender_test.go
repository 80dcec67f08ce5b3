package notifications

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hauling_pros/internal/config"
	"hauling_pros/internal/domain/entities"

	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func estimate() entities.Estimate {
	amount := 249.5
	return entities.Estimate{
		ID:              "est-1",
		Name:            "Dana",
		Email:           "dana@example.com",
		Phone:           "555-0100",
		Address:         "1 Main St",
		ServiceType:     entities.ServiceTypeYardWaste,
		PreferredDate:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		PreferredTime:   "AFTERNOON",
		PaymentMethod:   entities.PaymentMethodCreditCard,
		AdditionalInfo:  "branches & leaves",
		EstimatedAmount: &amount,
	}
}

func TestTemplates(t *testing.T) {
	t.Run("estimate ready embeds the confirm url verbatim", func(t *testing.T) {
		data := newTemplateData(estimate())
		data.ConfirmURL = "http://localhost:3000/confirm-appointment/abc-123"
		msg, err := estimateReadyTemplate.render(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg.Subject != "Your Estimate for YARD_WASTE - Action Required" {
			t.Fatalf("unexpected subject %q", msg.Subject)
		}
		if !strings.Contains(msg.Text, data.ConfirmURL) || !strings.Contains(msg.HTML, data.ConfirmURL) {
			t.Fatalf("confirm url missing")
		}
		if !strings.Contains(msg.Text, "$249.50") || !strings.Contains(msg.Text, "2024-06-10") {
			t.Fatalf("details missing from %q", msg.Text)
		}
		if !strings.Contains(msg.HTML, "branches &amp; leaves") {
			t.Fatalf("expected html escaping")
		}
	})

	t.Run("confirmation without link omits payment section", func(t *testing.T) {
		msg, err := appointmentConfirmedTemplate.render(newTemplateData(estimate()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(msg.Text, "Complete your payment") || strings.Contains(msg.HTML, "Pay Now") {
			t.Fatalf("unexpected payment section")
		}
		if !strings.Contains(msg.Text, "Payment Method: CREDIT CARD") {
			t.Fatalf("unexpected text %q", msg.Text)
		}
	})

	t.Run("confirmation with link", func(t *testing.T) {
		data := newTemplateData(estimate())
		data.PaymentLink = "https://buy.stripe.com/test_123"
		msg, err := appointmentConfirmedTemplate.render(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(msg.Text, data.PaymentLink) || !strings.Contains(msg.HTML, `href="https://buy.stripe.com/test_123"`) {
			t.Fatalf("payment link missing")
		}
	})

	t.Run("admin template lists contact", func(t *testing.T) {
		msg, err := adminNewEstimateTemplate.render(newTemplateData(estimate()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"Dana", "dana@example.com", "555-0100", "1 Main St"} {
			if !strings.Contains(msg.Text, want) {
				t.Fatalf("missing %q", want)
			}
		}
	})

	t.Run("missing amount", func(t *testing.T) {
		e := estimate()
		e.EstimatedAmount = nil
		if got := newTemplateData(e).Amount; got != "pending" {
			t.Fatalf("unexpected amount %q", got)
		}
	})
}

func TestNewSMTPSender(t *testing.T) {
	if _, err := NewSMTPSender(config.SMTPConfig{}, ""); !errors.Is(err, ErrSMTPNotConfigured) {
		t.Fatalf("expected ErrSMTPNotConfigured, got %v", err)
	}
	s, err := NewSMTPSender(config.SMTPConfig{Host: "smtp.example.com", Port: 465, User: "u", Password: "p", Sender: "noreply@example.com"}, "admin@example.com")
	if err != nil || s == nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSMTPSender_Send(t *testing.T) {
	t.Run("customer mail", func(t *testing.T) {
		d := &fakeDialer{}
		s := &SMTPSender{dialer: d, sender: "noreply@example.com", adminEmail: "admin@example.com"}
		if err := s.SendEstimateReady(context.Background(), estimate(), "http://x/confirm-appointment/t"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.sent) != 1 {
			t.Fatalf("expected 1 message, got %d", len(d.sent))
		}
		if to := d.sent[0].GetHeader("To"); len(to) != 1 || to[0] != "dana@example.com" {
			t.Fatalf("unexpected recipient %v", to)
		}
	})

	t.Run("admin mail goes to admin", func(t *testing.T) {
		d := &fakeDialer{}
		s := &SMTPSender{dialer: d, sender: "noreply@example.com", adminEmail: "admin@example.com"}
		if err := s.SendAdminNewEstimate(context.Background(), estimate()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if to := d.sent[0].GetHeader("To"); to[0] != "admin@example.com" {
			t.Fatalf("unexpected recipient %v", to)
		}
	})

	t.Run("no admin address", func(t *testing.T) {
		s := &SMTPSender{dialer: &fakeDialer{}, sender: "noreply@example.com"}
		if err := s.SendAdminNewEstimate(context.Background(), estimate()); !errors.Is(err, ErrMissingRecipient) {
			t.Fatalf("expected ErrMissingRecipient, got %v", err)
		}
	})

	t.Run("dial error surfaces", func(t *testing.T) {
		s := &SMTPSender{dialer: &fakeDialer{err: errors.New("535 auth")}, sender: "noreply@example.com"}
		if err := s.SendAppointmentConfirmed(context.Background(), estimate(), ""); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		d := &fakeDialer{}
		s := &SMTPSender{dialer: d, sender: "noreply@example.com"}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := s.SendEstimateReady(ctx, estimate(), "u"); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if len(d.sent) != 0 {
			t.Fatalf("expected nothing sent")
		}
	})
}
