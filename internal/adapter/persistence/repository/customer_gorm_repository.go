package repository

import (
	"context"
	"errors"
	"time"

	"hauling_pros/internal/domain/entities"
	"hauling_pros/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// CustomerRecord is the SQL row for a customer.
type CustomerRecord struct {
	ID         string `gorm:"primaryKey;size:36"`
	CustomerID string `gorm:"size:36;uniqueIndex"`
	Name       string `gorm:"size:255"`
	Email      string `gorm:"size:255"`
	Phone      string `gorm:"size:64"`
	Address    string `gorm:"size:512"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (CustomerRecord) TableName() string { return "customers" }

type CustomerGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICustomerRepository = (*CustomerGormRepository)(nil)

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	rec := CustomerRecord(c)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) GetByCustomerID(ctx context.Context, customerID string) (entities.Customer, error) {
	var rec CustomerRecord
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, err
	}
	return entities.Customer(rec), nil
}

// SQLModels lists the records the SQL store migrates.
func SQLModels() []interface{} {
	return []interface{}{&EstimateRecord{}, &CustomerRecord{}}
}
