package response

import (
	"time"

	"hauling_pros/internal/domain/entities"
)

type EstimateResponse struct {
	ID                string                      `json:"id"`
	CustomerID        string                      `json:"customerId"`
	Name              string                      `json:"name"`
	Email             string                      `json:"email"`
	Phone             string                      `json:"phone"`
	Address           string                      `json:"address"`
	ServiceType       string                      `json:"serviceType"`
	PreferredDate     string                      `json:"preferredDate"`
	PreferredTime     string                      `json:"preferredTime"`
	PaymentMethod     string                      `json:"paymentMethod"`
	AdditionalInfo    string                      `json:"additionalInfo,omitempty"`
	Status            string                      `json:"status"`
	EstimatedAmount   *float64                    `json:"estimatedAmount"`
	Analysis          *string                     `json:"analysis"`
	Breakdown         *entities.EstimateBreakdown `json:"breakdown,omitempty"`
	Images            []string                    `json:"images"`
	ConfirmationToken string                      `json:"confirmationToken,omitempty"`
	PaymentStatus     string                      `json:"paymentStatus"`
	PaymentLink       string                      `json:"paymentLink,omitempty"`
	CreatedAt         time.Time                   `json:"createdAt"`
	UpdatedAt         time.Time                   `json:"updatedAt"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	res := EstimateResponse{
		ID:                e.ID,
		CustomerID:        e.CustomerID,
		Name:              e.Name,
		Email:             e.Email,
		Phone:             e.Phone,
		Address:           e.Address,
		ServiceType:       string(e.ServiceType),
		PreferredTime:     e.PreferredTime,
		PaymentMethod:     string(e.PaymentMethod),
		AdditionalInfo:    e.AdditionalInfo,
		Status:            string(e.Status),
		EstimatedAmount:   e.EstimatedAmount,
		Analysis:          e.Analysis,
		Breakdown:         e.Breakdown,
		Images:            e.Images,
		ConfirmationToken: e.ConfirmationToken,
		PaymentStatus:     string(e.PaymentStatus),
		PaymentLink:       e.PaymentLink,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
	if !e.PreferredDate.IsZero() {
		res.PreferredDate = e.PreferredDate.Format(entities.DateLayout)
	}
	if res.Images == nil {
		res.Images = []string{}
	}
	return res
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return out
}

// PublicEstimateResponse is what the confirmation page sees; the token
// holder gets no admin-only fields.
type PublicEstimateResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	ServiceType     string   `json:"serviceType"`
	PreferredDate   string   `json:"preferredDate"`
	PreferredTime   string   `json:"preferredTime"`
	PaymentMethod   string   `json:"paymentMethod"`
	AdditionalInfo  string   `json:"additionalInfo,omitempty"`
	Status          string   `json:"status"`
	EstimatedAmount *float64 `json:"estimatedAmount"`
	Analysis        *string  `json:"analysis"`
	PaymentStatus   string   `json:"paymentStatus"`
	PaymentLink     string   `json:"paymentLink,omitempty"`
}

func FromEstimatePublic(e entities.Estimate) PublicEstimateResponse {
	full := FromEstimate(e)
	return PublicEstimateResponse{
		ID:              full.ID,
		Name:            full.Name,
		ServiceType:     full.ServiceType,
		PreferredDate:   full.PreferredDate,
		PreferredTime:   full.PreferredTime,
		PaymentMethod:   full.PaymentMethod,
		AdditionalInfo:  full.AdditionalInfo,
		Status:          full.Status,
		EstimatedAmount: full.EstimatedAmount,
		Analysis:        full.Analysis,
		PaymentStatus:   full.PaymentStatus,
		PaymentLink:     full.PaymentLink,
	}
}

type ConfirmationResponse struct {
	Success  bool                   `json:"success"`
	Estimate PublicEstimateResponse `json:"estimate"`
}

type BookingResponse struct {
	EstimateID        string `json:"estimateId"`
	CustomerID        string `json:"customerId"`
	ConfirmationToken string `json:"confirmationToken"`
	Message           string `json:"message"`
}

func FromReceipt(r entities.BookingReceipt) BookingResponse {
	return BookingResponse(r)
}

type AnalyzeResponse struct {
	Analysis        string                     `json:"analysis"`
	EstimatedAmount float64                    `json:"estimatedAmount"`
	Breakdown       entities.EstimateBreakdown `json:"breakdown"`
}

func FromAssistantEstimate(a entities.AssistantEstimate) AnalyzeResponse {
	return AnalyzeResponse(a)
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type PaymentLinkResponse struct {
	URL string `json:"url"`
}

type PingResponse struct {
	Message string `json:"message"`
}
