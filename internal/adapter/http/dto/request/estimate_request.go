package request

import (
	"strings"

	"hauling_pros/internal/domain/entities"
)

// SetAmountRequest is the admin amount update.
type SetAmountRequest struct {
	EstimatedAmount *float64 `json:"estimatedAmount" binding:"required"`
}

// ConfirmAppointmentRequest carries the customer's revised schedule. Omitted
// fields keep the values already on the estimate.
type ConfirmAppointmentRequest struct {
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	PaymentMethod string `json:"paymentMethod"`
}

func (r ConfirmAppointmentRequest) ToChange() (entities.AppointmentChange, error) {
	date, err := ParseDate(r.PreferredDate)
	if err != nil {
		return entities.AppointmentChange{}, err
	}
	return entities.AppointmentChange{
		PreferredDate: date,
		PreferredTime: strings.TrimSpace(r.PreferredTime),
		PaymentMethod: entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(r.PaymentMethod))),
	}, nil
}

type AnalyzeRequest struct {
	TextDescription string `json:"textDescription" binding:"required"`
}

type PaymentLinkRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
