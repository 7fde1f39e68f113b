package models

import "time"

// Booking ties an accepted application to its listing and cleaner.
type Booking struct {
	ID            int        `json:"id"`
	ListingID     int        `json:"listing_id"`
	ApplicationID int        `json:"application_id"`
	HostID        int        `json:"host_id"`
	CleanerID     int        `json:"cleaner_id"`
	Status        string     `json:"status"` // booked, completed, cancelled
	ListingTitle  string     `json:"listing_title,omitempty"`
	Date          time.Time  `json:"date"`
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	TotalPrice    float64    `json:"total_price"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

const (
	BookingBooked    = "booked"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Listing statuses as seen by the mobile app.
const (
	ListingPublished = "published"
	ListingBooked    = "booked"
	ListingCompleted = "completed"
	ListingCancelled = "cancelled"
)
