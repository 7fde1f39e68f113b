package models

import (
	"encoding/json"
	"time"
)

// Listing is the canonical, persisted shape of a cleaning job posting.
// The mobile application never produces this form directly; payloads coming
// from the app go through the shape adapter first.
type Listing struct {
	ID                int          `json:"id,omitempty"`
	LegacyID          string       `json:"_id,omitempty"`
	HostID            int          `json:"hostId,omitempty"`
	Title             string       `json:"title"`
	Location          Location     `json:"location"`
	AccommodationType string       `json:"accommodationType"`
	Date              time.Time    `json:"date"`
	StartTime         string       `json:"startTime"`
	EndTime           string       `json:"endTime"`
	PersonCount       int          `json:"personCount"`
	SquareMeters      float64      `json:"squareMeters"`
	Services          []string     `json:"services"`
	Equipment         EquipmentSet `json:"equipment"`
	Notes             string       `json:"notes"`
	BasePrice         *float64     `json:"basePrice,omitempty"`
	Commission        *float64     `json:"commission,omitempty"`
	TotalPrice        *float64     `json:"totalPrice,omitempty"`
	// Price is the legacy flat amount some older records carry instead of
	// the three-part breakdown.
	Price          *float64       `json:"price,omitempty"`
	Status         string         `json:"status,omitempty"`
	Applications   []Application  `json:"applications,omitempty"`
	BookedCleaners []int          `json:"bookedCleaners,omitempty"`
	FlatAddress    string         `json:"address,omitempty"`
	CreatedAt      time.Time      `json:"createdAt,omitzero"`
	UpdatedAt      *time.Time     `json:"updatedAt,omitempty"`
}

type Location struct {
	Address     string    `json:"address"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postalCode"`
	Coordinates []float64 `json:"coordinates"`
}

// EquipmentSet is stored as an array of canonical codes. Older backend
// records used a fixed object of boolean flags; decoding expands those into
// the array form so the rest of the code never sees the legacy shape.
type EquipmentSet []string

func (e *EquipmentSet) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*e = arr
		return nil
	}
	var legacy struct {
		VacuumCleaner    bool     `json:"vacuumCleaner"`
		Mop              bool     `json:"mop"`
		CleaningProducts bool     `json:"cleaningProducts"`
		Other            []string `json:"other"`
	}
	if err := json.Unmarshal(data, &legacy); err != nil {
		*e = EquipmentSet{}
		return nil
	}
	out := []string{}
	if legacy.VacuumCleaner {
		out = append(out, "vacuum")
	}
	if legacy.Mop {
		out = append(out, "mop")
	}
	if legacy.CleaningProducts {
		out = append(out, "products")
	}
	out = append(out, legacy.Other...)
	*e = out
	return nil
}

type ListingFilterRequest struct {
	Cities             []string  `json:"cities"`
	AccommodationTypes []string  `json:"accommodation_types"`
	Services           []string  `json:"services"`
	PriceFrom          float64   `json:"price_from"`
	PriceTo            float64   `json:"price_to"`
	DateFrom           time.Time `json:"date_from"`
	DateTo             time.Time `json:"date_to"`
	Sorting            int       `json:"sorting"` // 1 - newest, 2 - price desc, 3 - price asc
	Page               int       `json:"page"`
	Limit              int       `json:"limit"`
}

type ListingListResponse struct {
	Listings []FrontendListing `json:"listings"`
	MinPrice float64           `json:"min_price"`
	MaxPrice float64           `json:"max_price"`
	Total    int               `json:"total"`
}
