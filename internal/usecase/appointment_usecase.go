package usecase

import (
	"context"
	"hauling_pros/internal/domain/entities"
	"hauling_pros/internal/usecase/interfaces"
	"time"

	"github.com/rs/zerolog/log"
)

const appointmentDuration = time.Hour

// IAppointmentUseCase renders confirmed estimates as calendar events.
type IAppointmentUseCase interface {
	ListEvents(ctx context.Context) ([]entities.AppointmentEvent, error)
	Cancel(ctx context.Context, id string) error
}

type AppointmentUseCase struct {
	estimates interfaces.IEstimateRepository
	lifecycle IEstimateUseCase
	loc       *time.Location
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(estimates interfaces.IEstimateRepository, lifecycle IEstimateUseCase, loc *time.Location) *AppointmentUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &AppointmentUseCase{estimates: estimates, lifecycle: lifecycle, loc: loc}
}

func (u *AppointmentUseCase) ListEvents(ctx context.Context) ([]entities.AppointmentEvent, error) {
	confirmed, err := u.estimates.List(ctx, entities.EstimateFilter{Status: entities.EstimateStatusConfirmed})
	if err != nil {
		return nil, err
	}
	return BuildAppointmentEvents(confirmed, u.loc), nil
}

// Cancel removes a booking from the calendar by deleting its estimate.
func (u *AppointmentUseCase) Cancel(ctx context.Context, id string) error {
	return u.lifecycle.Delete(ctx, id)
}

// BuildAppointmentEvents places each estimate on the calendar.
//
// Estimates sharing a date and slot are stacked: the Nth one (in input order)
// starts N hours after the slot time. Stacking is unbounded and may overlap a
// later slot. Estimates with no date or an unusable time are skipped.
func BuildAppointmentEvents(estimates []entities.Estimate, loc *time.Location) []entities.AppointmentEvent {
	if loc == nil {
		loc = time.UTC
	}

	slotCounts := make(map[string]int)
	events := make([]entities.AppointmentEvent, 0, len(estimates))

	for _, e := range estimates {
		if e.PreferredDate.IsZero() {
			log.Warn().Str("estimate_id", e.ID).Msg("[appointment][usecase] skipping estimate without preferred date")
			continue
		}

		label, clock, ok := resolveSlot(e.PreferredTime)
		if !ok {
			log.Warn().Str("estimate_id", e.ID).Str("preferred_time", e.PreferredTime).Msg("[appointment][usecase] skipping unrecognized preferred time")
			continue
		}

		key := e.PreferredDate.Format(entities.DateLayout) + "_" + label
		offset := slotCounts[key]
		slotCounts[key]++

		parsed, err := time.Parse("15:04", clock)
		if err != nil {
			log.Warn().Err(err).Str("estimate_id", e.ID).Str("preferred_time", clock).Msg("[appointment][usecase] skipping unparseable preferred time")
			continue
		}

		y, m, d := e.PreferredDate.Date()
		start := time.Date(y, m, d, parsed.Hour()+offset, parsed.Minute(), 0, 0, loc)

		events = append(events, entities.AppointmentEvent{
			ID:              e.ID,
			Title:           string(e.ServiceType),
			Start:           start,
			End:             start.Add(appointmentDuration),
			CustomerName:    e.Name,
			ServiceType:     string(e.ServiceType),
			Address:         e.Address,
			Phone:           e.Phone,
			EstimatedAmount: e.EstimatedAmount,
		})
	}
	return events
}

// resolveSlot returns the slot label used for stacking and the clock time.
func resolveSlot(preferred string) (label, clock string, ok bool) {
	if c, found := entities.SlotClock[entities.TimeSlot(preferred)]; found {
		return preferred, c, true
	}
	if entities.IsClockTime(preferred) {
		return preferred, preferred, true
	}
	return "", "", false
}
