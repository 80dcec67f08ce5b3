package entities

import "time"

// BookingSubmission is a normalized public booking request.
type BookingSubmission struct {
	Name           string
	Email          string
	Phone          string
	Address        string
	ServiceType    ServiceType
	PreferredDate  time.Time
	PreferredTime  string
	PaymentMethod  PaymentMethod
	AdditionalInfo string
	Images         []string
}

// BookingReceipt is what the public caller gets back after intake.
type BookingReceipt struct {
	EstimateID        string `json:"estimateId"`
	CustomerID        string `json:"customerId"`
	ConfirmationToken string `json:"confirmationToken"`
	Message           string `json:"message"`
}

// AppointmentChange carries the scheduling fields a customer may revise
// while confirming.
type AppointmentChange struct {
	PreferredDate time.Time
	PreferredTime string
	PaymentMethod PaymentMethod
}
