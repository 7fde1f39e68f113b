package models

import "time"

// Application is a cleaner's response to a listing.
type Application struct {
	ID             int        `json:"id"`
	ListingID      int        `json:"listing_id"`
	CleanerID      int        `json:"cleaner_id"`
	Message        string     `json:"message,omitempty"`
	Status         string     `json:"status"` // pending, accepted, rejected
	CleanerName    string     `json:"cleaner_name,omitempty"`
	CleanerSurname string     `json:"cleaner_surname,omitempty"`
	CleanerRating  float64    `json:"cleaner_rating,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)
