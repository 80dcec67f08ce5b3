package payments

import (
	"context"
	"errors"
	"strings"

	"hauling_pros/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/rs/zerolog/log"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrMercadoPagoMissingInitPoint = errors.New("mercado pago preference without init_point")

// MercadoPagoGateway issues checkout preferences; the preference init_point
// is the payable URL.
type MercadoPagoGateway struct {
	client   preference.Client
	currency string
}

var _ interfaces.IPaymentLinkGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, currency string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Warn().Msg("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg), currency: strings.ToUpper(currency)}, nil
}

func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, amountMinor int64, description string) (string, error) {
	if g == nil || g.client == nil {
		log.Error().Msg("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Info().Int64("amount_minor", amountMinor).Msg("[payment][gateway] mercadopago create start")

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      description,
				Quantity:   1,
				UnitPrice:  float64(amountMinor) / 100,
				CurrencyID: g.currency,
			},
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] sdk create failed")
		return "", err
	}
	if resp == nil || resp.InitPoint == "" {
		return "", ErrMercadoPagoMissingInitPoint
	}
	log.Info().Str("preference_id", resp.ID).Msg("[payment][gateway] mercadopago create success")

	return resp.InitPoint, nil
}
