package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"hauling_pros/internal/domain/entities"
	"hauling_pros/internal/usecase/interfaces"
)

// memoryEstimates is a map-backed IEstimateRepository used by the round-trip tests.
type memoryEstimates struct {
	mu   sync.Mutex
	byID map[string]entities.Estimate
}

var _ interfaces.IEstimateRepository = (*memoryEstimates)(nil)

func newMemoryEstimates(seed ...entities.Estimate) *memoryEstimates {
	m := &memoryEstimates{byID: map[string]entities.Estimate{}}
	for _, e := range seed {
		m.byID[e.ID] = e
	}
	return m
}

func (m *memoryEstimates) Create(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[e.ID] = e
	return e, nil
}

func (m *memoryEstimates) GetByID(_ context.Context, id string) (entities.Estimate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[id], nil
}

func (m *memoryEstimates) GetByConfirmationToken(_ context.Context, token string) (entities.Estimate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.byID {
		if e.ConfirmationToken == token {
			return e, nil
		}
	}
	return entities.Estimate{}, nil
}

func (m *memoryEstimates) List(_ context.Context, filter entities.EstimateFilter) ([]entities.Estimate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entities.Estimate{}
	for _, e := range m.byID {
		if filter.Status == "" || e.Status == filter.Status {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryEstimates) mutate(id string, fn func(e *entities.Estimate)) (entities.Estimate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byID[id]
	if !ok {
		return entities.Estimate{}, nil
	}
	fn(&e)
	e.UpdatedAt = time.Now().UTC()
	m.byID[id] = e
	return e, nil
}

func (m *memoryEstimates) UpdateAmountByID(_ context.Context, id string, amount float64, status entities.EstimateStatus) (entities.Estimate, error) {
	return m.mutate(id, func(e *entities.Estimate) {
		e.EstimatedAmount = &amount
		e.Status = status
	})
}

func (m *memoryEstimates) MarkSentByID(_ context.Context, id string, token string) (entities.Estimate, error) {
	return m.mutate(id, func(e *entities.Estimate) {
		e.ConfirmationToken = token
		e.Status = entities.EstimateStatusEstimateSent
	})
}

func (m *memoryEstimates) ConfirmByID(_ context.Context, id string, c entities.EstimateConfirmation) (entities.Estimate, error) {
	return m.mutate(id, func(e *entities.Estimate) {
		e.PreferredDate = c.PreferredDate
		e.PreferredTime = c.PreferredTime
		e.PaymentMethod = c.PaymentMethod
		e.ConfirmationToken = c.ConfirmationToken
		e.PaymentStatus = c.PaymentStatus
		e.PaymentLink = c.PaymentLink
		e.Status = entities.EstimateStatusConfirmed
	})
}

func (m *memoryEstimates) AppendImagesByID(_ context.Context, id string, images []string) (entities.Estimate, error) {
	return m.mutate(id, func(e *entities.Estimate) {
		e.Images = append(e.Images, images...)
	})
}

func (m *memoryEstimates) DeleteByID(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return false, nil
	}
	delete(m.byID, id)
	return true, nil
}
