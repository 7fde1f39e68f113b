package models

import (
	"time"
)

// Invoice is issued to the host when a booking completes. The amounts carry
// the flattened price fields of the listing at completion time.
type Invoice struct {
	ID         int        `json:"id"`
	Number     string     `json:"number"`
	BookingID  int        `json:"booking_id"`
	UserID     int        `json:"user_id"`
	BasePrice  float64    `json:"basePrice"`
	Commission float64    `json:"commission"`
	TotalPrice float64    `json:"totalPrice"`
	Status     string     `json:"status"` // issued, paid, cancelled
	CreatedAt  time.Time  `json:"created_at"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
}

const (
	InvoiceIssued    = "issued"
	InvoicePaid      = "paid"
	InvoiceCancelled = "cancelled"
)
