package interfaces

import "context"

// IPaymentLinkGateway abstracts external payable-link providers (Stripe,
// Mercado Pago).
//
// amountMinor is expressed in the currency's minor unit (cents).
type IPaymentLinkGateway interface {
	CreatePaymentLink(ctx context.Context, amountMinor int64, description string) (url string, err error)
}
