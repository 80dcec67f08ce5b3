package entities

import "time"

// AppointmentEvent is a confirmed estimate placed on the admin calendar.
//
// Start/End are display positions only; stacked bookings in the same slot are
// pushed to successive hours and may overlap other slots.
type AppointmentEvent struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	CustomerName    string    `json:"customerName"`
	ServiceType     string    `json:"serviceType"`
	Address         string    `json:"address"`
	Phone           string    `json:"phone"`
	EstimatedAmount *float64  `json:"estimatedAmount"`
}

// LifecycleEvent is published to admin dashboards when an estimate changes.
type LifecycleEvent struct {
	Name       string         `json:"event"`
	EstimateID string         `json:"estimateId"`
	Status     EstimateStatus `json:"status,omitempty"`
}

const (
	EventEstimateCreated = "estimate.created"
	EventEstimateUpdated = "estimate.updated"
	EventEstimateDeleted = "estimate.deleted"
)
