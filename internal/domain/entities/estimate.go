package entities

import (
	"regexp"
	"time"
)

// EstimateStatus represents the lifecycle of a booking estimate.
//
// Domain notes:
//   - Bookings enter as PENDING (no description) or PENDING_ADMIN_REVIEW.
//   - An admin prices the request (ESTIMATED) and sends it (ESTIMATE_SENT).
//   - The customer confirms through the emailed token (CONFIRMED).
//   - COMPLETED is only reachable through a manual path; no operation produces it.
type EstimateStatus string

const (
	EstimateStatusPending            EstimateStatus = "PENDING"
	EstimateStatusPendingAdminReview EstimateStatus = "PENDING_ADMIN_REVIEW"
	EstimateStatusEstimated          EstimateStatus = "ESTIMATED"
	EstimateStatusEstimateSent       EstimateStatus = "ESTIMATE_SENT"
	EstimateStatusConfirmed          EstimateStatus = "CONFIRMED"
	EstimateStatusCompleted          EstimateStatus = "COMPLETED"
)

// IsValidEstimateStatus reports whether s names a known status.
func IsValidEstimateStatus(s string) bool {
	switch EstimateStatus(s) {
	case EstimateStatusPending,
		EstimateStatusPendingAdminReview,
		EstimateStatusEstimated,
		EstimateStatusEstimateSent,
		EstimateStatusConfirmed,
		EstimateStatusCompleted:
		return true
	}
	return false
}

type ServiceType string

const (
	ServiceTypeJunkRemoval        ServiceType = "JUNK_REMOVAL"
	ServiceTypeApplianceRemoval   ServiceType = "APPLIANCE_REMOVAL"
	ServiceTypeFurniturePickup    ServiceType = "FURNITURE_PICKUP"
	ServiceTypeMoveOutCleanouts   ServiceType = "MOVE_OUT_CLEANOUTS"
	ServiceTypeYardWaste          ServiceType = "YARD_WASTE"
	ServiceTypeDonationRuns       ServiceType = "DONATION_RUNS"
	ServiceTypeConstructionDebris ServiceType = "CONSTRUCTION_DEBRIS"
)

func IsValidServiceType(s string) bool {
	switch ServiceType(s) {
	case ServiceTypeJunkRemoval,
		ServiceTypeApplianceRemoval,
		ServiceTypeFurniturePickup,
		ServiceTypeMoveOutCleanouts,
		ServiceTypeYardWaste,
		ServiceTypeDonationRuns,
		ServiceTypeConstructionDebris:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "CASH"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethod = "DEBIT_CARD"
)

func IsValidPaymentMethod(s string) bool {
	switch PaymentMethod(s) {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard:
		return true
	}
	return false
}

// IsCard reports whether the method is paid through a payable link.
func (p PaymentMethod) IsCard() bool {
	return p == PaymentMethodCreditCard || p == PaymentMethodDebitCard
}

// TimeSlot is one of the named booking windows. A preferred time may also be
// a literal HH:MM clock value.
type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "MORNING"
	TimeSlotAfternoon TimeSlot = "AFTERNOON"
	TimeSlotEvening   TimeSlot = "EVENING"
)

// SlotClock maps the named windows to the clock time used on the calendar.
var SlotClock = map[TimeSlot]string{
	TimeSlotMorning:   "09:00",
	TimeSlotAfternoon: "13:00",
	TimeSlotEvening:   "17:00",
}

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// IsClockTime reports whether s has the HH:MM shape. It does not range-check.
func IsClockTime(s string) bool {
	return clockPattern.MatchString(s)
}

// IsValidPreferredTime accepts a named slot or an HH:MM literal.
func IsValidPreferredTime(s string) bool {
	if _, ok := SlotClock[TimeSlot(s)]; ok {
		return true
	}
	return IsClockTime(s)
}

type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "PENDING"
	PaymentStatusLinkSent    PaymentStatus = "PAYMENT_LINK_SENT"
	PaymentStatusNotRequired PaymentStatus = "NOT_REQUIRED"
)

// DateLayout is the wire and storage layout of a preferred date.
const DateLayout = "2006-01-02"

// Estimate is a booking request plus its pricing and confirmation state.
//
// Contact and service fields are a snapshot taken at booking time; later
// edits to the Customer do not flow back here.
//
// Monetary representation:
//   - EstimatedAmount is nil until the assistant or an admin sets it.
type Estimate struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`

	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	ServiceType ServiceType `json:"serviceType"`

	PreferredDate  time.Time     `json:"preferredDate"`
	PreferredTime  string        `json:"preferredTime"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	AdditionalInfo string        `json:"additionalInfo,omitempty"`

	Status          EstimateStatus     `json:"status"`
	EstimatedAmount *float64           `json:"estimatedAmount"`
	Analysis        *string            `json:"analysis"`
	Breakdown       *EstimateBreakdown `json:"breakdown,omitempty"`
	Images          []string           `json:"images"`

	ConfirmationToken string        `json:"confirmationToken,omitempty"`
	PaymentStatus     PaymentStatus `json:"paymentStatus"`
	PaymentLink       string        `json:"paymentLink,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasToken reports whether the estimate carries a usable confirmation token.
func (e Estimate) HasToken() bool {
	return e.ConfirmationToken != ""
}

// EstimateFilter narrows a list query. A zero value lists everything.
type EstimateFilter struct {
	Status EstimateStatus
}

// EstimateConfirmation is the set of fields written when a customer confirms.
type EstimateConfirmation struct {
	PreferredDate     time.Time
	PreferredTime     string
	PaymentMethod     PaymentMethod
	ConfirmationToken string
	PaymentStatus     PaymentStatus
	PaymentLink       string
}
