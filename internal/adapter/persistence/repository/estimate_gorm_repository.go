package repository

import (
	"context"
	"errors"
	"time"

	"hauling_pros/internal/domain/entities"
	"hauling_pros/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EstimateRecord is the SQL row for an estimate.
type EstimateRecord struct {
	ID                string                      `gorm:"primaryKey;size:36"`
	CustomerID        string                      `gorm:"size:36;index"`
	Name              string                      `gorm:"size:255"`
	Email             string                      `gorm:"size:255"`
	Phone             string                      `gorm:"size:64"`
	Address           string                      `gorm:"size:512"`
	ServiceType       string                      `gorm:"size:32"`
	PreferredDate     *time.Time                  `gorm:"type:date"`
	PreferredTime     string                      `gorm:"size:16"`
	PaymentMethod     string                      `gorm:"size:16"`
	AdditionalInfo    string                      `gorm:"type:text"`
	Status            string                      `gorm:"size:32;index"`
	EstimatedAmount   *float64                    `gorm:"column:estimated_amount"`
	Analysis          *string                     `gorm:"type:text"`
	Breakdown         *entities.EstimateBreakdown `gorm:"serializer:json"`
	Images            []string                    `gorm:"serializer:json"`
	ConfirmationToken *string                     `gorm:"size:64;uniqueIndex"`
	PaymentStatus     string                      `gorm:"size:32"`
	PaymentLink       string                      `gorm:"size:1024"`
	CreatedAt         time.Time                   `gorm:"index"`
	UpdatedAt         time.Time
}

func (EstimateRecord) TableName() string { return "estimates" }

// EstimateGormRepository persists Estimate entities in PostgreSQL or MySQL.
type EstimateGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimateRepository = (*EstimateGormRepository)(nil)

func NewEstimateGormRepository(db *gorm.DB) *EstimateGormRepository {
	return &EstimateGormRepository{db: db}
}

func (r *EstimateGormRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	rec := toEstimateRecord(e)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateGormRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	return r.first(r.db.WithContext(ctx), "id = ?", id)
}

func (r *EstimateGormRepository) GetByConfirmationToken(ctx context.Context, token string) (entities.Estimate, error) {
	return r.first(r.db.WithContext(ctx), "confirmation_token = ?", token)
}

func (r *EstimateGormRepository) List(ctx context.Context, filter entities.EstimateFilter) ([]entities.Estimate, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	var recs []EstimateRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Estimate, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromEstimateRecord(rec))
	}
	return out, nil
}

func (r *EstimateGormRepository) UpdateAmountByID(ctx context.Context, id string, amount float64, status entities.EstimateStatus) (entities.Estimate, error) {
	return r.update(ctx, id, map[string]interface{}{
		"estimated_amount": amount,
		"status":           string(status),
	})
}

func (r *EstimateGormRepository) MarkSentByID(ctx context.Context, id string, token string) (entities.Estimate, error) {
	return r.update(ctx, id, map[string]interface{}{
		"status":             string(entities.EstimateStatusEstimateSent),
		"confirmation_token": token,
	})
}

func (r *EstimateGormRepository) ConfirmByID(ctx context.Context, id string, c entities.EstimateConfirmation) (entities.Estimate, error) {
	date := c.PreferredDate
	return r.update(ctx, id, map[string]interface{}{
		"status":             string(entities.EstimateStatusConfirmed),
		"preferred_date":     &date,
		"preferred_time":     c.PreferredTime,
		"payment_method":     string(c.PaymentMethod),
		"confirmation_token": c.ConfirmationToken,
		"payment_status":     string(c.PaymentStatus),
		"payment_link":       c.PaymentLink,
	})
}

// AppendImagesByID locks the row so concurrent uploads do not drop images.
func (r *EstimateGormRepository) AppendImagesByID(ctx context.Context, id string, images []string) (entities.Estimate, error) {
	var out entities.Estimate
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec EstimateRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		rec.Images = append(rec.Images, images...)
		rec.UpdatedAt = time.Now().UTC()
		if err := tx.Model(&rec).Select("images", "updated_at").Updates(&rec).Error; err != nil {
			return err
		}
		out = fromEstimateRecord(rec)
		return nil
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return out, nil
}

func (r *EstimateGormRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&EstimateRecord{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *EstimateGormRepository) update(ctx context.Context, id string, fields map[string]interface{}) (entities.Estimate, error) {
	fields["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&EstimateRecord{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return entities.Estimate{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Estimate{}, nil
	}
	return r.first(r.db.WithContext(ctx), "id = ?", id)
}

func (r *EstimateGormRepository) first(q *gorm.DB, cond string, arg string) (entities.Estimate, error) {
	var rec EstimateRecord
	err := q.Where(cond, arg).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Estimate{}, nil
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateRecord(rec), nil
}

func toEstimateRecord(e entities.Estimate) EstimateRecord {
	rec := EstimateRecord{
		ID:              e.ID,
		CustomerID:      e.CustomerID,
		Name:            e.Name,
		Email:           e.Email,
		Phone:           e.Phone,
		Address:         e.Address,
		ServiceType:     string(e.ServiceType),
		PreferredTime:   e.PreferredTime,
		PaymentMethod:   string(e.PaymentMethod),
		AdditionalInfo:  e.AdditionalInfo,
		Status:          string(e.Status),
		EstimatedAmount: e.EstimatedAmount,
		Analysis:        e.Analysis,
		Breakdown:       e.Breakdown,
		Images:          e.Images,
		PaymentStatus:   string(e.PaymentStatus),
		PaymentLink:     e.PaymentLink,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if rec.Images == nil {
		rec.Images = []string{}
	}
	if !e.PreferredDate.IsZero() {
		d := e.PreferredDate
		rec.PreferredDate = &d
	}
	if e.ConfirmationToken != "" {
		tok := e.ConfirmationToken
		rec.ConfirmationToken = &tok
	}
	return rec
}

func fromEstimateRecord(rec EstimateRecord) entities.Estimate {
	e := entities.Estimate{
		ID:              rec.ID,
		CustomerID:      rec.CustomerID,
		Name:            rec.Name,
		Email:           rec.Email,
		Phone:           rec.Phone,
		Address:         rec.Address,
		ServiceType:     entities.ServiceType(rec.ServiceType),
		PreferredTime:   rec.PreferredTime,
		PaymentMethod:   entities.PaymentMethod(rec.PaymentMethod),
		AdditionalInfo:  rec.AdditionalInfo,
		Status:          entities.EstimateStatus(rec.Status),
		EstimatedAmount: rec.EstimatedAmount,
		Analysis:        rec.Analysis,
		Breakdown:       rec.Breakdown,
		Images:          rec.Images,
		PaymentStatus:   entities.PaymentStatus(rec.PaymentStatus),
		PaymentLink:     rec.PaymentLink,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
	if e.Images == nil {
		e.Images = []string{}
	}
	if rec.PreferredDate != nil {
		y, m, d := rec.PreferredDate.Date()
		e.PreferredDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	if rec.ConfirmationToken != nil {
		e.ConfirmationToken = *rec.ConfirmationToken
	}
	return e
}
