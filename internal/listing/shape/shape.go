// Package shape maps listings between the flat representation the mobile
// application works with and the canonical backend form. Both directions are
// pure and total: malformed or missing fields degrade to defaults, they never
// fail the conversion.
//
// Two asymmetries of the historical behavior are kept on purpose: ToBackend
// never parses a city out of the address string (the city stays at its
// default), and ToFrontend collapses a price breakdown to its scalar total.
// A subsequent ToBackend therefore only carries totalPrice unless the caller
// recomputes the breakdown.
package shape

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"menageBack/internal/models"
)

const (
	DefaultTitle      = "Nouvelle annonce de ménage"
	DefaultCity       = "Non spécifiée"
	DefaultPostalCode = "00000"
	DefaultStatus     = "published"

	defaultClock = "00:00"
)

var postalCodeRe = regexp.MustCompile(`[0-9]{5}`)

// accommodationCodes maps the app's localized labels to canonical codes.
var accommodationCodes = map[string]string{
	"Appartement":     "apartment",
	"Maison":          "house",
	"Studio":          "studio",
	"Loft":            "loft",
	"Villa":           "villa",
	"Chambre d'hôtel": "hotel_room",
	"Autre":           "other",
}

// serviceCodes maps checkbox labels to canonical service codes. Labels not
// listed here fall back to regular_cleaning.
var serviceCodes = map[string]string{
	"Nettoyage standard":      "regular_cleaning",
	"Dépoussiérage":           "dusting",
	"Nettoyage des sols":      "floor_cleaning",
	"Nettoyage des vitres":    "window_cleaning",
	"Lessive":                 "laundry",
	"Changement des draps":    "bed_making",
	"Nettoyage cuisine":       "kitchen_cleaning",
	"Nettoyage salle de bain": "bathroom_cleaning",
	"Repassage":               "ironing",
	"Sortir les poubelles":    "trash_removal",
}

// equipmentCodes maps equipment labels to canonical codes. Unknown labels
// keep their raw label so nothing the user checked is dropped.
var equipmentCodes = map[string]string{
	"Aspirateur":           "vacuum",
	"Serpillière":          "mop",
	"Produits d'entretien": "products",
	"Lave-linge":           "washing_machine",
	"Fer à repasser":       "iron",
	"Escabeau":             "stepladder",
}

// ToBackend converts an app-shaped listing, any field of which may be
// absent, into a fully populated canonical listing.
func ToBackend(f models.FrontendListing) models.Listing {
	b := models.Listing{
		Title:             orDefault(f.Title, DefaultTitle),
		AccommodationType: accommodationCode(f.AccommodationType),
		Location: models.Location{
			Address:     f.Address,
			City:        DefaultCity,
			PostalCode:  extractPostalCode(f.Address),
			Coordinates: []float64{0, 0},
		},
		Date:           dateOrNow(f.Date),
		StartTime:      clockOrDefault(f.StartTime),
		EndTime:        clockOrDefault(f.EndTime),
		PersonCount:    personCount(f),
		SquareMeters:   squareMeters(f),
		Services:       normalizeServices(f.Services),
		Equipment:      normalizeEquipment(f.Equipment),
		Notes:          orDefault(f.Notes, f.AdditionalNotes),
		Status:         f.Status,
		Applications:   f.Applications,
		BookedCleaners: f.BookedCleaners,
	}

	if f.ID != "" {
		if n, err := strconv.Atoi(f.ID); err == nil {
			b.ID = n
		} else {
			b.LegacyID = f.ID
		}
	}
	if f.CreatedAt != "" {
		if ts, ok := models.FlexDate(f.CreatedAt).Time(); ok {
			b.CreatedAt = ts
		}
	}

	if f.Price != nil {
		if br := f.Price.Breakdown; br != nil {
			base, commission, total := br.BaseAmount, br.Commission, br.TotalAmount
			b.BasePrice = &base
			b.Commission = &commission
			b.TotalPrice = &total
		} else {
			total := f.Price.Amount
			b.TotalPrice = &total
		}
	}

	return b
}

// ToFrontend converts a canonical listing into the flat shape the app
// stores and displays. Every field of the result is a plain serializable
// value; in particular dates come out as RFC 3339 strings, never time.Time.
func ToFrontend(b models.Listing) models.FrontendListing {
	f := models.FrontendListing{
		ID:                frontendID(b),
		Title:             orDefault(b.Title, DefaultTitle),
		AccommodationType: orDefault(b.AccommodationType, "other"),
		Address:           displayAddress(b),
		StartTime:         models.FlexTime(orDefault(b.StartTime, defaultClock)),
		EndTime:           models.FlexTime(orDefault(b.EndTime, defaultClock)),
		Services:          models.NewSelection(orEmpty(b.Services)),
		Equipment:         models.NewSelection(orEmpty([]string(b.Equipment))),
		Notes:             b.Notes,
		Status:            orDefault(b.Status, DefaultStatus),
		ApplicantsCount:   len(b.Applications),
		Applications:      b.Applications,
		BookedCleaners:    b.BookedCleaners,
	}

	if !b.Date.IsZero() {
		f.Date = models.FlexDate(b.Date.Format(time.RFC3339))
	}
	if !b.CreatedAt.IsZero() {
		f.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}

	count := b.PersonCount
	if count < 1 {
		count = 1
	}
	f.PersonCount = &models.FlexInt{Val: count, OK: true}
	f.SquareMeters = &models.FlexFloat{Val: b.SquareMeters, OK: true}

	// Only the scalar total survives this direction; the breakdown is not
	// reconstructed.
	var display float64
	switch {
	case b.TotalPrice != nil:
		display = *b.TotalPrice
	case b.Price != nil:
		display = *b.Price
	}
	f.Price = &models.PriceValue{Amount: display}

	return f
}

// FromResponse decodes a backend JSON payload that is either a bare listing
// or wrapped in a {"data": ...} envelope.
func FromResponse(body []byte) models.Listing {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		body = envelope.Data
	}
	var b models.Listing
	_ = json.Unmarshal(body, &b)
	return b
}

func accommodationCode(label string) string {
	if code, ok := accommodationCodes[label]; ok {
		return code
	}
	for _, code := range accommodationCodes {
		if code == label {
			return label
		}
	}
	return "other"
}

// extractPostalCode scans for the first 5-digit run in the address. The
// city is deliberately not parsed out here.
func extractPostalCode(address string) string {
	if match := postalCodeRe.FindString(address); match != "" {
		return match
	}
	return DefaultPostalCode
}

func dateOrNow(d models.FlexDate) time.Time {
	if ts, ok := d.Time(); ok {
		return ts
	}
	return time.Now()
}

func clockOrDefault(t models.FlexTime) string {
	if c := t.Clock(); c != "" {
		return c
	}
	return defaultClock
}

func personCount(f models.FrontendListing) int {
	count := 1
	if f.PeopleNeeded != nil && f.PeopleNeeded.OK {
		count = f.PeopleNeeded.Val
	} else if f.PersonCount != nil && f.PersonCount.OK {
		count = f.PersonCount.Val
	}
	if count < 1 {
		count = 1
	}
	return count
}

func squareMeters(f models.FrontendListing) float64 {
	if f.Area != nil {
		return f.Area.Val
	}
	if f.SquareMeters != nil {
		return f.SquareMeters.Val
	}
	return 0
}

func normalizeServices(s models.Selection) []string {
	if !s.IsMap() {
		return orEmpty(s.Items())
	}
	out := []string{}
	for _, label := range s.Checked() {
		if code, ok := serviceCodes[label]; ok {
			out = append(out, code)
		} else {
			out = append(out, "regular_cleaning")
		}
	}
	return out
}

func normalizeEquipment(s models.Selection) models.EquipmentSet {
	if !s.IsMap() {
		return orEmpty(s.Items())
	}
	out := []string{}
	for _, label := range s.Checked() {
		if code, ok := equipmentCodes[label]; ok {
			out = append(out, code)
		} else {
			out = append(out, label)
		}
	}
	return out
}

func frontendID(b models.Listing) string {
	if b.LegacyID != "" {
		return b.LegacyID
	}
	if b.ID != 0 {
		return strconv.Itoa(b.ID)
	}
	return ""
}

// displayAddress rebuilds the single-line address the app shows. The postal
// code and city are appended only when not already part of the string, so a
// round trip does not duplicate them.
func displayAddress(b models.Listing) string {
	loc := b.Location
	if loc.Address == "" && loc.City == "" && loc.PostalCode == "" {
		return b.FlatAddress
	}
	address := loc.Address
	if loc.PostalCode != "" && !strings.Contains(address, loc.PostalCode) {
		if address != "" {
			address += ", "
		}
		address += loc.PostalCode
	}
	if loc.City != "" && !strings.Contains(address, loc.City) {
		if address != "" {
			address += " "
		}
		address += loc.City
	}
	return address
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
