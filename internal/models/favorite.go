package models

import "time"

type Favorite struct {
	ID        int       `json:"id"`
	CleanerID int       `json:"cleaner_id"`
	ListingID int       `json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
}
