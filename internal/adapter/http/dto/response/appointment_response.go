package response

import (
	"time"

	"hauling_pros/internal/domain/entities"
)

type AppointmentEventResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	CustomerName    string   `json:"customerName"`
	ServiceType     string   `json:"serviceType"`
	Address         string   `json:"address"`
	Phone           string   `json:"phone"`
	EstimatedAmount *float64 `json:"estimatedAmount"`
}

func FromAppointmentEvents(events []entities.AppointmentEvent) []AppointmentEventResponse {
	out := make([]AppointmentEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, AppointmentEventResponse{
			ID:              ev.ID,
			Title:           ev.Title,
			Start:           ev.Start.Format(time.RFC3339),
			End:             ev.End.Format(time.RFC3339),
			CustomerName:    ev.CustomerName,
			ServiceType:     ev.ServiceType,
			Address:         ev.Address,
			Phone:           ev.Phone,
			EstimatedAmount: ev.EstimatedAmount,
		})
	}
	return out
}
