package models

import "time"

type Payment struct {
	ID        int       `json:"id"`
	InvoiceID int       `json:"invoice_id"`
	UserID    int       `json:"user_id"`
	Amount    float64   `json:"amount"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}

type PaymentHistoryItem struct {
	Payment Payment  `json:"payment"`
	Invoice *Invoice `json:"invoice,omitempty"`
}
