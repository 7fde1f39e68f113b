package models

import "time"

// Review left by a host about a cleaner after a completed booking.
type Review struct {
	ID             int        `json:"id"`
	BookingID      int        `json:"booking_id"`
	HostID         int        `json:"host_id"`
	CleanerID      int        `json:"cleaner_id"`
	Rating         float64    `json:"rating"`
	Review         string     `json:"review"`
	HostName       string     `json:"host_name,omitempty"`
	HostSurname    string     `json:"host_surname,omitempty"`
	HostAvatarPath *string    `json:"host_avatar_path,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}
