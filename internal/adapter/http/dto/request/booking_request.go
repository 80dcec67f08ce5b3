package request

import (
	"errors"
	"strings"
	"time"

	"hauling_pros/internal/domain/entities"
)

var (
	ErrInvalidDate = errors.New("invalid date")
)

// BookingRequest is the public booking form. date/time are the names the
// website posts; preferredDate/preferredTime are accepted as aliases.
type BookingRequest struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone" binding:"required"`
	Address        string   `json:"address" binding:"required"`
	ServiceType    string   `json:"serviceType" binding:"required"`
	Date           string   `json:"date"`
	PreferredDate  string   `json:"preferredDate"`
	Time           string   `json:"time"`
	PreferredTime  string   `json:"preferredTime"`
	PaymentMethod  string   `json:"paymentMethod" binding:"required"`
	AdditionalInfo string   `json:"additionalInfo"`
	Images         []string `json:"images"`
}

func (r BookingRequest) ResolveDate() (time.Time, error) {
	if v := strings.TrimSpace(r.Date); v != "" {
		return ParseDate(v)
	}
	return ParseDate(r.PreferredDate)
}

func (r BookingRequest) ResolveTime() string {
	if v := strings.TrimSpace(r.Time); v != "" {
		return v
	}
	return strings.TrimSpace(r.PreferredTime)
}

func (r BookingRequest) ToSubmission() (entities.BookingSubmission, error) {
	date, err := r.ResolveDate()
	if err != nil {
		return entities.BookingSubmission{}, err
	}
	return entities.BookingSubmission{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		ServiceType:    entities.ServiceType(strings.ToUpper(strings.TrimSpace(r.ServiceType))),
		PreferredDate:  date,
		PreferredTime:  r.ResolveTime(),
		PaymentMethod:  entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(r.PaymentMethod))),
		AdditionalInfo: r.AdditionalInfo,
		Images:         r.Images,
	}, nil
}

// ParseDate accepts YYYY-MM-DD or an RFC3339 timestamp and returns the
// calendar date at UTC midnight. Empty input yields the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(entities.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
