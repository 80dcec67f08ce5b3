package usecase

import (
	"context"
	"errors"
	"fmt"
	"hauling_pros/internal/domain/entities"
	"hauling_pros/internal/usecase/interfaces"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrEstimateNotFound            = errors.New("estimate not found")
	ErrInvalidEstimateID           = errors.New("invalid estimate id")
	ErrInvalidEstimateVal          = errors.New("invalid estimate value")
	ErrInvalidStatusFilter         = errors.New("invalid status filter")
	ErrInvalidTransition           = errors.New("invalid estimate status transition")
	ErrEstimateAmountMissing       = errors.New("estimate amount missing")
	ErrEstimateDeliveryFailed      = errors.New("estimate delivery failed")
	ErrInvalidConfirmation         = errors.New("invalid appointment confirmation")
	ErrPaymentLinkFailed           = errors.New("payment link creation failed")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrNoImages                    = errors.New("no images provided")
	ErrInvalidImages               = errors.New("invalid images")
)

// IEstimateUseCase exposes the estimate lifecycle.
//
//   - PENDING / PENDING_ADMIN_REVIEW / ESTIMATED => SetAmount() => ESTIMATED
//   - ESTIMATED / ESTIMATE_SENT => SendEstimate() => ESTIMATE_SENT
//   - ESTIMATE_SENT => ConfirmAppointment() => CONFIRMED
type IEstimateUseCase interface {
	List(ctx context.Context, status string) ([]entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByToken(ctx context.Context, token string) (entities.Estimate, error)
	SetAmount(ctx context.Context, id string, amount float64) (entities.Estimate, error)
	SendEstimate(ctx context.Context, id string) (entities.Estimate, error)
	ConfirmAppointment(ctx context.Context, token string, change entities.AppointmentChange) (entities.Estimate, error)
	AddImages(ctx context.Context, id string, images []string) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
}

type EstimateUseCase struct {
	estimates interfaces.IEstimateRepository
	customers interfaces.ICustomerRepository
	notifier  interfaces.INotificationSender
	gateway   interfaces.IPaymentLinkGateway
	events    interfaces.IEventPublisher
	baseURL   string
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// NewEstimateUseCase wires the lifecycle. gateway may be nil, in which case
// card confirmations fail with ErrPaymentGatewayNotConfigured.
func NewEstimateUseCase(
	estimates interfaces.IEstimateRepository,
	customers interfaces.ICustomerRepository,
	notifier interfaces.INotificationSender,
	gateway interfaces.IPaymentLinkGateway,
	events interfaces.IEventPublisher,
	baseURL string,
) *EstimateUseCase {
	return &EstimateUseCase{
		estimates: estimates,
		customers: customers,
		notifier:  notifier,
		gateway:   gateway,
		events:    events,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

func (u *EstimateUseCase) List(ctx context.Context, status string) ([]entities.Estimate, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status != "" && !entities.IsValidEstimateStatus(status) {
		return nil, ErrInvalidStatusFilter
	}
	return u.estimates.List(ctx, entities.EstimateFilter{Status: entities.EstimateStatus(status)})
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.estimates.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// GetByToken never distinguishes a blank token from an unknown one.
func (u *EstimateUseCase) GetByToken(ctx context.Context, token string) (entities.Estimate, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	e, err := u.estimates.GetByConfirmationToken(ctx, token)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) SetAmount(ctx context.Context, id string, amount float64) (entities.Estimate, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return entities.Estimate{}, ErrInvalidEstimateVal
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	switch current.Status {
	case entities.EstimateStatusPending, entities.EstimateStatusPendingAdminReview, entities.EstimateStatusEstimated:
	default:
		return entities.Estimate{}, fmt.Errorf("%w: cannot price estimate in %s", ErrInvalidTransition, current.Status)
	}

	updated, err := u.estimates.UpdateAmountByID(ctx, current.ID, amount, entities.EstimateStatusEstimated)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	log.Info().Str("estimate_id", updated.ID).Float64("amount", amount).Msg("[estimate][usecase] amount set")
	publish(u.events, entities.EventEstimateUpdated, updated)
	return updated, nil
}

// SendEstimate marks the estimate as sent and emails the confirmation link.
//
// A delivery failure is reported as ErrEstimateDeliveryFailed together with
// the already persisted estimate; the status change is not rolled back.
func (u *EstimateUseCase) SendEstimate(ctx context.Context, id string) (entities.Estimate, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if current.EstimatedAmount == nil {
		return entities.Estimate{}, ErrEstimateAmountMissing
	}
	switch current.Status {
	case entities.EstimateStatusEstimated, entities.EstimateStatusEstimateSent:
	default:
		return entities.Estimate{}, fmt.Errorf("%w: cannot send estimate in %s", ErrInvalidTransition, current.Status)
	}

	token := current.ConfirmationToken
	if !current.HasToken() {
		token = uuid.NewString()
	}

	if _, err := u.estimates.MarkSentByID(ctx, current.ID, token); err != nil {
		return entities.Estimate{}, err
	}

	fresh, err := u.estimates.GetByID(ctx, current.ID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if fresh.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	publish(u.events, entities.EventEstimateUpdated, fresh)

	recipient := fresh
	if u.customers != nil && fresh.CustomerID != "" {
		customer, err := u.customers.GetByCustomerID(ctx, fresh.CustomerID)
		if err != nil {
			log.Warn().Err(err).Str("estimate_id", fresh.ID).Msg("[estimate][usecase] customer lookup failed, using snapshot email")
		} else if customer.Email != "" {
			recipient.Email = customer.Email
		}
	}

	if u.notifier == nil {
		log.Warn().Str("estimate_id", fresh.ID).Msg("[estimate][usecase] notifier not configured")
		return fresh, ErrEstimateDeliveryFailed
	}
	if err := u.notifier.SendEstimateReady(ctx, recipient, u.ConfirmURL(fresh.ConfirmationToken)); err != nil {
		log.Error().Err(err).Str("estimate_id", fresh.ID).Msg("[estimate][usecase] estimate delivery failed")
		return fresh, fmt.Errorf("%w: %v", ErrEstimateDeliveryFailed, err)
	}

	log.Info().Str("estimate_id", fresh.ID).Msg("[estimate][usecase] estimate sent")
	return fresh, nil
}

// ConfirmURL is the customer-facing confirmation link for a token.
func (u *EstimateUseCase) ConfirmURL(token string) string {
	return u.baseURL + "/confirm-appointment/" + token
}

// ConfirmAppointment is all-or-nothing with respect to the payable link: it is
// created before anything is written, and its failure leaves the estimate
// untouched. The confirmation email is best-effort.
func (u *EstimateUseCase) ConfirmAppointment(ctx context.Context, token string, change entities.AppointmentChange) (entities.Estimate, error) {
	current, err := u.GetByToken(ctx, token)
	if err != nil {
		return entities.Estimate{}, err
	}
	if current.Status != entities.EstimateStatusEstimateSent {
		return entities.Estimate{}, fmt.Errorf("%w: cannot confirm estimate in %s", ErrInvalidTransition, current.Status)
	}

	change, err = resolveChange(current, change)
	if err != nil {
		return entities.Estimate{}, err
	}

	confirmation := entities.EstimateConfirmation{
		PreferredDate:     change.PreferredDate,
		PreferredTime:     change.PreferredTime,
		PaymentMethod:     change.PaymentMethod,
		ConfirmationToken: uuid.NewString(),
		PaymentStatus:     current.PaymentStatus,
	}
	switch {
	case change.PaymentMethod == entities.PaymentMethodCash:
		confirmation.PaymentStatus = entities.PaymentStatusNotRequired
	case confirmation.PaymentStatus == "":
		confirmation.PaymentStatus = entities.PaymentStatusPending
	}

	if current.EstimatedAmount != nil && change.PaymentMethod.IsCard() {
		link, err := u.createPaymentLink(ctx, *current.EstimatedAmount, string(current.ServiceType))
		if err != nil {
			log.Error().Err(err).Str("estimate_id", current.ID).Msg("[estimate][usecase] payment link failed, confirmation aborted")
			return entities.Estimate{}, err
		}
		confirmation.PaymentLink = link
		confirmation.PaymentStatus = entities.PaymentStatusLinkSent
	}

	updated, err := u.estimates.ConfirmByID(ctx, current.ID, confirmation)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	log.Info().Str("estimate_id", updated.ID).Msg("[estimate][usecase] appointment confirmed")
	publish(u.events, entities.EventEstimateUpdated, updated)

	if u.notifier != nil {
		if err := u.notifier.SendAppointmentConfirmed(ctx, updated, confirmation.PaymentLink); err != nil {
			log.Warn().Err(err).Str("estimate_id", updated.ID).Msg("[estimate][usecase] confirmation email failed")
		}
	}
	return updated, nil
}

func (u *EstimateUseCase) createPaymentLink(ctx context.Context, amount float64, description string) (string, error) {
	if u.gateway == nil {
		return "", ErrPaymentGatewayNotConfigured
	}
	link, err := u.gateway.CreatePaymentLink(ctx, ToMinorUnits(amount), description)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentLinkFailed, err)
	}
	if strings.TrimSpace(link) == "" {
		return "", fmt.Errorf("%w: empty link", ErrPaymentLinkFailed)
	}
	return link, nil
}

// resolveChange fills omitted fields from the current estimate and validates
// the result.
func resolveChange(current entities.Estimate, change entities.AppointmentChange) (entities.AppointmentChange, error) {
	if change.PreferredDate.IsZero() {
		change.PreferredDate = current.PreferredDate
	} else {
		y, m, d := change.PreferredDate.Date()
		change.PreferredDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	change.PreferredTime = strings.ToUpper(strings.TrimSpace(change.PreferredTime))
	if change.PreferredTime == "" {
		change.PreferredTime = current.PreferredTime
	}
	if change.PaymentMethod == "" {
		change.PaymentMethod = current.PaymentMethod
	}

	switch {
	case change.PreferredDate.IsZero():
		return change, fmt.Errorf("%w: preferred date is required", ErrInvalidConfirmation)
	case !entities.IsValidPreferredTime(change.PreferredTime):
		return change, fmt.Errorf("%w: unknown preferred time %q", ErrInvalidConfirmation, change.PreferredTime)
	case !entities.IsValidPaymentMethod(string(change.PaymentMethod)):
		return change, fmt.Errorf("%w: unknown payment method %q", ErrInvalidConfirmation, change.PaymentMethod)
	}
	return change, nil
}

func (u *EstimateUseCase) AddImages(ctx context.Context, id string, images []string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	if len(images) == 0 {
		return entities.Estimate{}, ErrNoImages
	}
	if err := validateImages(nil, images); err != nil {
		return entities.Estimate{}, err
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := validateImages(current.Images, images); err != nil {
		return entities.Estimate{}, err
	}

	updated, err := u.estimates.AppendImagesByID(ctx, current.ID, images)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	publish(u.events, entities.EventEstimateUpdated, updated)
	return updated, nil
}

// validateImages checks the shape of the added images and that the stored
// total stays within entities.MaxImagePayloadBytes.
func validateImages(existing, added []string) error {
	for i, img := range added {
		if !entities.IsImageDataURL(img) {
			return fmt.Errorf("%w: image %d is not a base64 data URL", ErrInvalidImages, i)
		}
	}
	if total := entities.ImagesSize(existing) + entities.ImagesSize(added); total > entities.MaxImagePayloadBytes {
		return fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrInvalidImages, total, entities.MaxImagePayloadBytes)
	}
	return nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	deleted, err := u.estimates.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEstimateNotFound
	}
	log.Info().Str("estimate_id", id).Msg("[estimate][usecase] estimate deleted")
	publish(u.events, entities.EventEstimateDeleted, entities.Estimate{ID: id})
	return nil
}

// ToMinorUnits converts a decimal amount to cents, rounding half away from zero.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
