package payments

import (
	"fmt"

	"hauling_pros/internal/config"
	"hauling_pros/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// NewGateway picks the payment link provider from configuration. Mock mode
// wins over any provider.
func NewGateway(cfg config.PaymentConfig) (interfaces.IPaymentLinkGateway, error) {
	if cfg.Mock {
		log.Info().Msg("[payment][gateway] mock mode enabled")
		return &MockGateway{}, nil
	}

	switch cfg.Provider {
	case config.PaymentProviderStripe, "":
		gw, err := NewStripeGateway(cfg.StripeSecretKey, cfg.Currency)
		if err != nil {
			return nil, err
		}
		return gw, nil
	case config.PaymentProviderMercadoPago:
		gw, err := NewMercadoPagoGateway(cfg.MercadoPagoToken, cfg.Currency)
		if err != nil {
			return nil, err
		}
		return gw, nil
	default:
		return nil, fmt.Errorf("unsupported payment provider %q", cfg.Provider)
	}
}
