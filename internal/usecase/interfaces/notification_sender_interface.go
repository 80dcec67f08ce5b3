package interfaces

import (
	"context"
	"hauling_pros/internal/domain/entities"
)

// INotificationSender delivers customer and admin messages.
type INotificationSender interface {
	SendEstimateReady(ctx context.Context, e entities.Estimate, confirmURL string) error
	SendAdminNewEstimate(ctx context.Context, e entities.Estimate) error
	SendAppointmentConfirmed(ctx context.Context, e entities.Estimate, paymentLink string) error
}
