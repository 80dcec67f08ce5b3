package payments

import (
	"context"
	"fmt"

	"hauling_pros/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MockGateway returns a fake payable URL without calling any provider.
type MockGateway struct {
	BaseURL string
}

var _ interfaces.IPaymentLinkGateway = (*MockGateway)(nil)

const defaultMockBaseURL = "https://payments.mock.local/link"

func (g *MockGateway) CreatePaymentLink(_ context.Context, amountMinor int64, description string) (string, error) {
	base := defaultMockBaseURL
	if g != nil && g.BaseURL != "" {
		base = g.BaseURL
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("%d|%s", amountMinor, description)))
	url := fmt.Sprintf("%s/%s?amount=%d", base, id, amountMinor)
	log.Info().Str("url", url).Msg("[payment][gateway] mock create success")
	return url, nil
}
