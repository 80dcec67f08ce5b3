package payments

import (
	"context"
	"errors"
	"strings"

	"hauling_pros/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	stripe "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
var ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")

// StripeGateway creates a one-off price for the amount and wraps it in a
// payment link.
type StripeGateway struct {
	api      *client.API
	currency string
}

var _ interfaces.IPaymentLinkGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey, currency string) (*StripeGateway, error) {
	if secretKey == "" {
		log.Warn().Msg("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	log.Info().Msg("[payment][gateway] Stripe client initialized")

	return &StripeGateway{api: api, currency: strings.ToLower(currency)}, nil
}

func (g *StripeGateway) CreatePaymentLink(ctx context.Context, amountMinor int64, description string) (string, error) {
	if g == nil || g.api == nil {
		log.Error().Msg("[payment][gateway] gateway not configured")
		return "", ErrStripeGatewayNotConfigured
	}
	log.Info().Int64("amount_minor", amountMinor).Msg("[payment][gateway] stripe create start")

	priceParams := &stripe.PriceParams{
		Currency:   stripe.String(g.currency),
		UnitAmount: stripe.Int64(amountMinor),
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String(description),
		},
	}
	priceParams.Context = ctx

	price, err := g.api.Prices.New(priceParams)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] stripe price create failed")
		return "", err
	}

	linkParams := &stripe.PaymentLinkParams{
		LineItems: []*stripe.PaymentLinkLineItemParams{
			{
				Price:    stripe.String(price.ID),
				Quantity: stripe.Int64(1),
			},
		},
	}
	linkParams.Context = ctx

	link, err := g.api.PaymentLinks.New(linkParams)
	if err != nil {
		log.Error().Err(err).Str("price_id", price.ID).Msg("[payment][gateway] stripe payment link create failed")
		return "", err
	}
	log.Info().Str("payment_link_id", link.ID).Msg("[payment][gateway] stripe create success")

	return link.URL, nil
}
