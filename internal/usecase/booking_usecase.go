package usecase

import (
	"context"
	"errors"
	"fmt"
	"hauling_pros/internal/domain/entities"
	"hauling_pros/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidBooking        = errors.New("invalid booking")
	ErrBookingCreationFailed = errors.New("booking creation failed")
	ErrInvalidDescription    = errors.New("invalid text description")
	ErrAssistantUnavailable  = errors.New("estimate assistant unavailable")
)

const (
	AssistantFallbackAnalysis = "AI failed to generate an estimate. An admin will provide an estimate shortly."

	bookingMessageAdminReview = "Booking request received and sent for admin review"
	bookingMessageReceived    = "Booking request received successfully"
)

// IBookingUseCase covers public booking intake and ad-hoc assistant analysis.
type IBookingUseCase interface {
	SubmitBooking(ctx context.Context, sub entities.BookingSubmission) (entities.BookingReceipt, error)
	AnalyzeDescription(ctx context.Context, text string) (entities.AssistantEstimate, error)
}

type BookingUseCase struct {
	customers interfaces.ICustomerRepository
	estimates interfaces.IEstimateRepository
	assistant interfaces.IEstimateAssistant
	notifier  interfaces.INotificationSender
	events    interfaces.IEventPublisher
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

// NewBookingUseCase wires intake. assistant, notifier and events may be nil;
// a nil assistant behaves like one that always fails.
func NewBookingUseCase(
	customers interfaces.ICustomerRepository,
	estimates interfaces.IEstimateRepository,
	assistant interfaces.IEstimateAssistant,
	notifier interfaces.INotificationSender,
	events interfaces.IEventPublisher,
) *BookingUseCase {
	return &BookingUseCase{
		customers: customers,
		estimates: estimates,
		assistant: assistant,
		notifier:  notifier,
		events:    events,
	}
}

func (u *BookingUseCase) SubmitBooking(ctx context.Context, sub entities.BookingSubmission) (entities.BookingReceipt, error) {
	sub = normalizeSubmission(sub)
	if err := validateSubmission(sub); err != nil {
		return entities.BookingReceipt{}, err
	}

	now := time.Now().UTC()
	customer := entities.Customer{
		ID:         uuid.NewString(),
		CustomerID: uuid.NewString(),
		Name:       sub.Name,
		Email:      sub.Email,
		Phone:      sub.Phone,
		Address:    sub.Address,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	customer, err := u.customers.Create(ctx, customer)
	if err != nil {
		log.Error().Err(err).Msg("[booking][usecase] customer create failed")
		return entities.BookingReceipt{}, fmt.Errorf("%w: %v", ErrBookingCreationFailed, err)
	}

	est := entities.Estimate{
		ID:             uuid.NewString(),
		CustomerID:     customer.CustomerID,
		Name:           sub.Name,
		Email:          sub.Email,
		Phone:          sub.Phone,
		Address:        sub.Address,
		ServiceType:    sub.ServiceType,
		PreferredDate:  sub.PreferredDate,
		PreferredTime:  sub.PreferredTime,
		PaymentMethod:  sub.PaymentMethod,
		AdditionalInfo: sub.AdditionalInfo,
		Status:         entities.EstimateStatusPending,
		Images:         append([]string{}, sub.Images...),
		PaymentStatus:  entities.PaymentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	message := bookingMessageReceived
	if sub.AdditionalInfo != "" {
		est.Status = entities.EstimateStatusPendingAdminReview
		message = bookingMessageAdminReview

		suggestion, err := u.analyze(ctx, string(sub.ServiceType)+": "+sub.AdditionalInfo)
		if err != nil {
			log.Warn().Err(err).Str("customer_id", customer.CustomerID).Msg("[booking][usecase] assistant failed, using fallback analysis")
			analysis := AssistantFallbackAnalysis
			est.Analysis = &analysis
			message = AssistantFallbackAnalysis
		} else {
			amount := suggestion.EstimatedAmount
			analysis := suggestion.Analysis
			breakdown := suggestion.Breakdown
			est.EstimatedAmount = &amount
			est.Analysis = &analysis
			est.Breakdown = &breakdown
		}
	}

	est.ConfirmationToken = uuid.NewString()

	created, err := u.estimates.Create(ctx, est)
	if err != nil {
		log.Error().Err(err).Str("customer_id", customer.CustomerID).Msg("[booking][usecase] estimate create failed")
		return entities.BookingReceipt{}, fmt.Errorf("%w: %v", ErrBookingCreationFailed, err)
	}
	log.Info().
		Str("estimate_id", created.ID).
		Str("status", string(created.Status)).
		Msg("[booking][usecase] booking created")

	if created.EstimatedAmount != nil && u.notifier != nil {
		if err := u.notifier.SendAdminNewEstimate(ctx, created); err != nil {
			log.Warn().Err(err).Str("estimate_id", created.ID).Msg("[booking][usecase] admin notification failed")
		}
	}
	publish(u.events, entities.EventEstimateCreated, created)

	return entities.BookingReceipt{
		EstimateID:        created.ID,
		CustomerID:        customer.CustomerID,
		ConfirmationToken: created.ConfirmationToken,
		Message:           message,
	}, nil
}

// AnalyzeDescription runs the assistant on arbitrary admin-supplied text.
func (u *BookingUseCase) AnalyzeDescription(ctx context.Context, text string) (entities.AssistantEstimate, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.AssistantEstimate{}, ErrInvalidDescription
	}
	return u.analyze(ctx, text)
}

func (u *BookingUseCase) analyze(ctx context.Context, text string) (entities.AssistantEstimate, error) {
	if u.assistant == nil {
		return entities.AssistantEstimate{}, ErrAssistantUnavailable
	}
	res, err := u.assistant.Analyze(ctx, text)
	if err != nil {
		return entities.AssistantEstimate{}, fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}
	if strings.TrimSpace(res.Analysis) == "" || res.EstimatedAmount <= 0 {
		return entities.AssistantEstimate{}, fmt.Errorf("%w: incomplete assistant response", ErrAssistantUnavailable)
	}
	return res, nil
}

func normalizeSubmission(sub entities.BookingSubmission) entities.BookingSubmission {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.Address = strings.TrimSpace(sub.Address)
	sub.PreferredTime = strings.ToUpper(strings.TrimSpace(sub.PreferredTime))
	sub.AdditionalInfo = strings.TrimSpace(sub.AdditionalInfo)
	if !sub.PreferredDate.IsZero() {
		y, m, d := sub.PreferredDate.Date()
		sub.PreferredDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return sub
}

func validateSubmission(sub entities.BookingSubmission) error {
	switch {
	case sub.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidBooking)
	case sub.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidBooking)
	case sub.Phone == "":
		return fmt.Errorf("%w: phone is required", ErrInvalidBooking)
	case sub.Address == "":
		return fmt.Errorf("%w: address is required", ErrInvalidBooking)
	case !entities.IsValidServiceType(string(sub.ServiceType)):
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidBooking, sub.ServiceType)
	case sub.PreferredDate.IsZero():
		return fmt.Errorf("%w: preferred date is required", ErrInvalidBooking)
	case !entities.IsValidPreferredTime(sub.PreferredTime):
		return fmt.Errorf("%w: unknown preferred time %q", ErrInvalidBooking, sub.PreferredTime)
	case !entities.IsValidPaymentMethod(string(sub.PaymentMethod)):
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidBooking, sub.PaymentMethod)
	}
	if err := validateImages(nil, sub.Images); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}
	return nil
}
