package pricing

import (
	"math"

	"menageBack/internal/models"
)

const (
	// HourlyRate is the base rate charged per hour of cleaning.
	HourlyRate = 15.50
	// CommissionRate is the platform's cut, computed on the base amount.
	CommissionRate = 0.15

	defaultStart = "09:00"
	defaultEnd   = "12:00"

	// fallbackDuration replaces non-positive time windows.
	fallbackDuration = 2.0

	// includedArea is the surface covered by the base rate; every full
	// surchargeStep beyond it adds surchargeFactor to the base amount.
	includedArea    = 100.0
	surchargeStep   = 50.0
	surchargeFactor = 0.2

	// premiumFactor is added once per selected premium service.
	premiumFactor = 0.1
)

// premiumServices lists the service identifiers that raise the price,
// under both their canonical codes and the labels the app's checkboxes use.
var premiumServices = map[string]struct{}{
	"window_cleaning":      {},
	"Nettoyage des vitres": {},
	"laundry":              {},
	"bed_making":           {},
	"Changement des draps": {},
	"kitchen_cleaning":     {},
	"Nettoyage cuisine":    {},
}

// Compute derives the three-part price of a listing from its time window,
// surface and selected services. It never fails: every missing or
// unparseable field falls back to a defined default, so the same input
// always yields the same breakdown.
func Compute(listing models.FrontendListing) models.PriceBreakdown {
	start := hoursOrDefault(listing.StartTime, defaultStart)
	end := hoursOrDefault(listing.EndTime, defaultEnd)

	duration := end - start
	if duration <= 0 {
		duration = fallbackDuration
	}

	base := HourlyRate * duration

	if area := areaOf(listing); area > includedArea {
		blocks := math.Floor((area - includedArea) / surchargeStep)
		base += base * (blocks * surchargeFactor)
	}

	premium := 0
	for _, id := range selected(listing.Services) {
		if _, ok := premiumServices[id]; ok {
			premium++
		}
	}
	base += base * (float64(premium) * premiumFactor)

	base = round2(base)
	commission := round2(base * CommissionRate)
	total := round2(base + commission)

	return models.PriceBreakdown{
		BaseAmount:  base,
		Commission:  commission,
		TotalAmount: total,
	}
}

func hoursOrDefault(t models.FlexTime, def string) float64 {
	if h, ok := t.Hours(); ok {
		return h
	}
	h, _ := models.FlexTime(def).Hours()
	return h
}

func areaOf(listing models.FrontendListing) float64 {
	if listing.SquareMeters != nil {
		return listing.SquareMeters.Val
	}
	if listing.Area != nil {
		return listing.Area.Val
	}
	return 0
}

// selected normalizes the dual-shape services field to a list of
// identifiers: the array form is taken as-is, the checkbox form keeps the
// labels whose value is true.
func selected(services models.Selection) []string {
	if services.IsMap() {
		return services.Checked()
	}
	return services.Items()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
