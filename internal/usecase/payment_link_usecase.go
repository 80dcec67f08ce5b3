package usecase

import (
	"context"
	"errors"
	"fmt"
	"hauling_pros/internal/usecase/interfaces"
	"math"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrInvalidPaymentLinkInput = errors.New("invalid payment link input")

// IPaymentLinkUseCase issues standalone payable links from the admin panel.
type IPaymentLinkUseCase interface {
	CreateLink(ctx context.Context, amount float64, description string) (string, error)
}

type PaymentLinkUseCase struct {
	gateway interfaces.IPaymentLinkGateway
}

var _ IPaymentLinkUseCase = (*PaymentLinkUseCase)(nil)

func NewPaymentLinkUseCase(gateway interfaces.IPaymentLinkGateway) *PaymentLinkUseCase {
	return &PaymentLinkUseCase{gateway: gateway}
}

func (u *PaymentLinkUseCase) CreateLink(ctx context.Context, amount float64, description string) (string, error) {
	description = strings.TrimSpace(description)
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) || description == "" {
		return "", ErrInvalidPaymentLinkInput
	}
	if u.gateway == nil {
		return "", ErrPaymentGatewayNotConfigured
	}

	minor := ToMinorUnits(amount)
	url, err := u.gateway.CreatePaymentLink(ctx, minor, description)
	if err != nil {
		log.Error().Err(err).Int64("amount_minor", minor).Msg("[payment][usecase] create link failed")
		return "", fmt.Errorf("%w: %v", ErrPaymentLinkFailed, err)
	}
	log.Info().Int64("amount_minor", minor).Msg("[payment][usecase] link created")
	return url, nil
}
