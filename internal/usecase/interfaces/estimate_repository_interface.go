package interfaces

import (
	"context"
	"hauling_pros/internal/domain/entities"
)

// IEstimateRepository abstracts persistence for Estimate.
//
// Lookups return a zero Estimate (ID == "") when nothing matches; update
// methods do the same when the id does not exist. Callers map that to their
// own not-found error.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByConfirmationToken(ctx context.Context, token string) (entities.Estimate, error)
	List(ctx context.Context, filter entities.EstimateFilter) ([]entities.Estimate, error)
	UpdateAmountByID(ctx context.Context, id string, amount float64, status entities.EstimateStatus) (entities.Estimate, error)
	MarkSentByID(ctx context.Context, id string, token string) (entities.Estimate, error)
	ConfirmByID(ctx context.Context, id string, c entities.EstimateConfirmation) (entities.Estimate, error)
	AppendImagesByID(ctx context.Context, id string, images []string) (entities.Estimate, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
