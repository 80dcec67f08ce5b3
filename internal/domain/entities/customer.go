package entities

import "time"

// Customer is the contact record created for every booking submission.
//
// Repeat customers are not deduplicated; each booking creates a new row.
// The core never updates or deletes customers.
type Customer struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
