package interfaces

import (
	"context"
	"hauling_pros/internal/domain/entities"
)

// IEstimateAssistant turns a free-text job description into a priced
// estimate. Implementations must validate the model output before returning.
type IEstimateAssistant interface {
	Analyze(ctx context.Context, description string) (entities.AssistantEstimate, error)
}
