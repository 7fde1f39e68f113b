package shape

import (
	"encoding/json"
	"testing"
	"time"

	"menageBack/internal/models"
)

func decodeFrontend(t *testing.T, raw string) models.FrontendListing {
	t.Helper()
	var f models.FrontendListing
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		t.Fatalf("decode frontend listing: %v", err)
	}
	return f
}

func TestToBackendPostalCode(t *testing.T) {
	cases := []struct {
		name    string
		address string
		want    string
	}{
		{"postal code embedded", "12 Rue Test, 75001 Paris", "75001"},
		{"no code present", "no code here", "00000"},
		{"empty address", "", "00000"},
		{"code without city", "31000", "31000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := ToBackend(models.FrontendListing{Address: tc.address})
			if b.Location.PostalCode != tc.want {
				t.Fatalf("expected postal code %q got %q", tc.want, b.Location.PostalCode)
			}
			if b.Location.City != DefaultCity {
				t.Fatalf("city must stay at default, got %q", b.Location.City)
			}
		})
	}
}

func TestToBackendDefaults(t *testing.T) {
	b := ToBackend(models.FrontendListing{})

	if b.Title != DefaultTitle {
		t.Errorf("expected default title, got %q", b.Title)
	}
	if b.AccommodationType != "other" {
		t.Errorf("expected accommodation other, got %q", b.AccommodationType)
	}
	if b.StartTime != "00:00" || b.EndTime != "00:00" {
		t.Errorf("expected 00:00 time defaults, got %q/%q", b.StartTime, b.EndTime)
	}
	if b.PersonCount != 1 {
		t.Errorf("expected person count 1, got %d", b.PersonCount)
	}
	if b.SquareMeters != 0 {
		t.Errorf("expected 0 square meters, got %f", b.SquareMeters)
	}
	if b.Date.IsZero() {
		t.Errorf("expected date defaulted to now")
	}
	if len(b.Location.Coordinates) != 2 || b.Location.Coordinates[0] != 0 || b.Location.Coordinates[1] != 0 {
		t.Errorf("expected zero coordinates, got %v", b.Location.Coordinates)
	}
	if b.Services == nil || len(b.Services) != 0 {
		t.Errorf("expected empty services array, got %v", b.Services)
	}
	if b.BasePrice != nil || b.Commission != nil || b.TotalPrice != nil {
		t.Errorf("expected no price fields on priceless input")
	}
}

func TestToBackendAccommodationLabels(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"Appartement", "apartment"},
		{"Maison", "house"},
		{"Chambre d'hôtel", "hotel_room"},
		{"apartment", "apartment"}, // already canonical passes through
		{"Igloo", "other"},
	}
	for _, tc := range cases {
		if got := ToBackend(models.FrontendListing{AccommodationType: tc.label}).AccommodationType; got != tc.want {
			t.Errorf("label %q: expected %q got %q", tc.label, tc.want, got)
		}
	}
}

func TestToBackendServiceCheckboxes(t *testing.T) {
	f := decodeFrontend(t, `{"services":{"Dépoussiérage":true,"Nettoyage des sols":false,"Nettoyage des vitres":true}}`)
	b := ToBackend(f)
	want := []string{"dusting", "window_cleaning"}
	if len(b.Services) != len(want) {
		t.Fatalf("expected %d services got %v", len(want), b.Services)
	}
	for i := range want {
		if b.Services[i] != want[i] {
			t.Fatalf("expected services %v got %v", want, b.Services)
		}
	}
}

func TestToBackendUnknownLabels(t *testing.T) {
	f := decodeFrontend(t, `{"services":{"Nettoyage du jardin":true},"equipment":{"Karcher":true,"Aspirateur":true}}`)
	b := ToBackend(f)
	if len(b.Services) != 1 || b.Services[0] != "regular_cleaning" {
		t.Fatalf("unknown service label should fall back to regular_cleaning, got %v", b.Services)
	}
	// equipment keeps raw unknown labels, sorted order puts Aspirateur first
	if len(b.Equipment) != 2 || b.Equipment[0] != "vacuum" || b.Equipment[1] != "Karcher" {
		t.Fatalf("unexpected equipment %v", b.Equipment)
	}
}

func TestToBackendPrice(t *testing.T) {
	t.Run("breakdown flattens", func(t *testing.T) {
		f := decodeFrontend(t, `{"price":{"baseAmount":31,"commission":4.65,"totalAmount":35.65}}`)
		b := ToBackend(f)
		if b.BasePrice == nil || *b.BasePrice != 31 {
			t.Fatalf("expected base price 31, got %v", b.BasePrice)
		}
		if b.Commission == nil || *b.Commission != 4.65 {
			t.Fatalf("expected commission 4.65, got %v", b.Commission)
		}
		if b.TotalPrice == nil || *b.TotalPrice != 35.65 {
			t.Fatalf("expected total 35.65, got %v", b.TotalPrice)
		}
	})
	t.Run("plain number is total only", func(t *testing.T) {
		f := decodeFrontend(t, `{"price":42}`)
		b := ToBackend(f)
		if b.BasePrice != nil || b.Commission != nil {
			t.Fatalf("plain price must not produce base/commission")
		}
		if b.TotalPrice == nil || *b.TotalPrice != 42 {
			t.Fatalf("expected total 42, got %v", b.TotalPrice)
		}
	})
}

func TestToBackendCounts(t *testing.T) {
	f := decodeFrontend(t, `{"peopleNeeded":"3","area":"120.5"}`)
	b := ToBackend(f)
	if b.PersonCount != 3 {
		t.Fatalf("expected person count 3, got %d", b.PersonCount)
	}
	if b.SquareMeters != 120.5 {
		t.Fatalf("expected 120.5 square meters, got %f", b.SquareMeters)
	}

	f = decodeFrontend(t, `{"personCount":2,"squareMeters":80}`)
	b = ToBackend(f)
	if b.PersonCount != 2 || b.SquareMeters != 80 {
		t.Fatalf("fallback fields ignored: %d %f", b.PersonCount, b.SquareMeters)
	}
}

func TestToBackendTimestampTimes(t *testing.T) {
	f := decodeFrontend(t, `{"startTime":"2026-03-14T09:05:00Z","endTime":"14:30"}`)
	b := ToBackend(f)
	if b.StartTime != "09:05" {
		t.Fatalf("timestamp should format to 09:05, got %q", b.StartTime)
	}
	if b.EndTime != "14:30" {
		t.Fatalf("clock string should pass through, got %q", b.EndTime)
	}
}

func TestToFrontendStringsDatesOut(t *testing.T) {
	when := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	f := ToFrontend(models.Listing{ID: 7, Date: when, CreatedAt: created})

	if string(f.Date) != "2026-03-14T00:00:00Z" {
		t.Fatalf("expected RFC3339 date string, got %q", f.Date)
	}
	if f.CreatedAt != "2026-03-01T12:30:00Z" {
		t.Fatalf("expected RFC3339 createdAt, got %q", f.CreatedAt)
	}

	// Everything must serialize to plain JSON primitives.
	raw, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal frontend listing: %v", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("unmarshal generic: %v", err)
	}
	if _, ok := generic["date"].(string); !ok {
		t.Fatalf("date must be a string on the wire, got %T", generic["date"])
	}
}

func TestToFrontendDefaultsAndIDs(t *testing.T) {
	f := ToFrontend(models.Listing{LegacyID: "abc123", ID: 9})
	if f.ID != "abc123" {
		t.Fatalf("_id must win over id, got %q", f.ID)
	}
	if f.Status != DefaultStatus {
		t.Fatalf("expected status published, got %q", f.Status)
	}
	if f.PersonCount == nil || f.PersonCount.Val != 1 {
		t.Fatalf("expected person count default 1")
	}
	if f.Price == nil || f.Price.Amount != 0 {
		t.Fatalf("expected price 0 for unpriced listing")
	}

	f = ToFrontend(models.Listing{ID: 9})
	if f.ID != "9" {
		t.Fatalf("expected numeric id as string, got %q", f.ID)
	}
}

func TestToFrontendPriceCollapse(t *testing.T) {
	total := 47.06
	f := ToFrontend(models.Listing{TotalPrice: &total})
	if f.Price == nil || f.Price.Amount != 47.06 || f.Price.Breakdown != nil {
		t.Fatalf("expected scalar total 47.06, got %+v", f.Price)
	}

	legacy := 30.0
	f = ToFrontend(models.Listing{Price: &legacy})
	if f.Price == nil || f.Price.Amount != 30 {
		t.Fatalf("expected legacy flat price 30, got %+v", f.Price)
	}
}

func TestToFrontendAddress(t *testing.T) {
	cases := []struct {
		name string
		loc  models.Location
		flat string
		want string
	}{
		{
			name: "postal and city appended",
			loc:  models.Location{Address: "12 Rue Test", PostalCode: "75001", City: "Paris"},
			want: "12 Rue Test, 75001 Paris",
		},
		{
			name: "no duplication when already present",
			loc:  models.Location{Address: "12 Rue Test, 75001 Paris", PostalCode: "75001", City: "Paris"},
			want: "12 Rue Test, 75001 Paris",
		},
		{
			name: "flat address fallback",
			flat: "3 Avenue Foch",
			want: "3 Avenue Foch",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToFrontend(models.Listing{Location: tc.loc, FlatAddress: tc.flat}).Address
			if got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}

func TestToFrontendLegacyEquipment(t *testing.T) {
	raw := []byte(`{"title":"T","equipment":{"vacuumCleaner":true,"mop":false,"cleaningProducts":true,"other":["ladder"]}}`)
	b := FromResponse(raw)
	f := ToFrontend(b)
	items := f.Equipment.Items()
	want := []string{"vacuum", "products", "ladder"}
	if len(items) != len(want) {
		t.Fatalf("expected equipment %v got %v", want, items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("expected equipment %v got %v", want, items)
		}
	}
}

func TestFromResponseEnvelope(t *testing.T) {
	bare := FromResponse([]byte(`{"title":"Sans enveloppe","_id":"x1"}`))
	if bare.Title != "Sans enveloppe" || bare.LegacyID != "x1" {
		t.Fatalf("bare decode failed: %+v", bare)
	}

	wrapped := FromResponse([]byte(`{"data":{"title":"Avec enveloppe","applications":[{"id":1},{"id":2}]}}`))
	if wrapped.Title != "Avec enveloppe" {
		t.Fatalf("envelope decode failed: %+v", wrapped)
	}
	if got := ToFrontend(wrapped).ApplicantsCount; got != 2 {
		t.Fatalf("expected applicantsCount 2, got %d", got)
	}
}

func TestRoundTripPreservesCore(t *testing.T) {
	x := decodeFrontend(t, `{
		"title": "Grand ménage de printemps",
		"accommodationType": "Appartement",
		"address": "12 Rue Test, 75001 Paris",
		"startTime": "09:00",
		"endTime": "11:00",
		"services": {"Dépoussiérage": true, "Nettoyage des sols": false, "Nettoyage des vitres": true}
	}`)

	first := ToFrontend(ToBackend(x))
	second := ToFrontend(ToBackend(first))

	if second.Title != "Grand ménage de printemps" {
		t.Errorf("title lost in round trip: %q", second.Title)
	}
	if len(first.Services.Items()) != 2 || len(second.Services.Items()) != 2 {
		t.Errorf("service count drifted: %v then %v", first.Services.Items(), second.Services.Items())
	}
	if first.AccommodationType != "apartment" || second.AccommodationType != "apartment" {
		t.Errorf("accommodation category drifted: %q then %q", first.AccommodationType, second.AccommodationType)
	}
}
