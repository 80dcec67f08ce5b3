package interfaces

import (
	"context"
	"hauling_pros/internal/domain/entities"
)

// ICustomerRepository abstracts persistence for Customer.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByCustomerID(ctx context.Context, customerID string) (entities.Customer, error)
}
