package pricing

import (
	"encoding/json"
	"testing"

	"menageBack/internal/models"
)

func decodeListing(t *testing.T, raw string) models.FrontendListing {
	t.Helper()
	var l models.FrontendListing
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	return l
}

func TestCompute(t *testing.T) {
	cases := []struct {
		name           string
		raw            string
		wantBase       float64
		wantCommission float64
		wantTotal      float64
	}{
		{
			name:           "two hour window no surcharges",
			raw:            `{"squareMeters":50,"startTime":"09:00","endTime":"11:00","services":["regular_cleaning"]}`,
			wantBase:       31.00,
			wantCommission: 4.65,
			wantTotal:      35.65,
		},
		{
			name:           "area and premium surcharge",
			raw:            `{"squareMeters":150,"startTime":"09:00","endTime":"11:00","services":["regular_cleaning","window_cleaning"]}`,
			wantBase:       40.92,
			wantCommission: 6.14,
			wantTotal:      47.06,
		},
		{
			name:           "defaults give three hours",
			raw:            `{}`,
			wantBase:       46.50,
			wantCommission: 6.98,
			wantTotal:      53.48,
		},
		{
			name:           "inverted window clamps to two hours",
			raw:            `{"startTime":"10:00","endTime":"09:00"}`,
			wantBase:       31.00,
			wantCommission: 4.65,
			wantTotal:      35.65,
		},
		{
			name:           "area at threshold has no surcharge",
			raw:            `{"squareMeters":100,"startTime":"09:00","endTime":"11:00"}`,
			wantBase:       31.00,
			wantCommission: 4.65,
			wantTotal:      35.65,
		},
		{
			name:           "partial block above threshold has no surcharge",
			raw:            `{"squareMeters":149,"startTime":"09:00","endTime":"11:00"}`,
			wantBase:       31.00,
			wantCommission: 4.65,
			wantTotal:      35.65,
		},
		{
			name:           "two full blocks give forty percent",
			raw:            `{"squareMeters":200,"startTime":"09:00","endTime":"11:00"}`,
			wantBase:       43.40,
			wantCommission: 6.51,
			wantTotal:      49.91,
		},
		{
			name:           "unparseable area treated as zero",
			raw:            `{"squareMeters":"beaucoup","startTime":"09:00","endTime":"11:00"}`,
			wantBase:       31.00,
			wantCommission: 4.65,
			wantTotal:      35.65,
		},
		{
			name:           "half hour minutes count as fractions",
			raw:            `{"startTime":"09:30","endTime":"11:00"}`,
			wantBase:       23.25,
			wantCommission: 3.49,
			wantTotal:      26.74,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(decodeListing(t, tc.raw))
			if got.BaseAmount != tc.wantBase {
				t.Fatalf("base: expected %.2f got %.2f", tc.wantBase, got.BaseAmount)
			}
			if got.Commission != tc.wantCommission {
				t.Fatalf("commission: expected %.2f got %.2f", tc.wantCommission, got.Commission)
			}
			if got.TotalAmount != tc.wantTotal {
				t.Fatalf("total: expected %.2f got %.2f", tc.wantTotal, got.TotalAmount)
			}
		})
	}
}

func TestComputePremiumStacking(t *testing.T) {
	// Two premium services add 20% in a single step, not 1.1 * 1.1.
	l := decodeListing(t, `{"startTime":"09:00","endTime":"11:00","services":["window_cleaning","kitchen_cleaning"]}`)
	got := Compute(l)
	if got.BaseAmount != 37.20 {
		t.Fatalf("expected base 37.20 got %.2f", got.BaseAmount)
	}
}

func TestComputeCheckboxServices(t *testing.T) {
	// The boolean-map shape counts only checked labels, matched by label.
	l := decodeListing(t, `{"startTime":"09:00","endTime":"11:00","services":{"Nettoyage des vitres":true,"Nettoyage cuisine":false,"Dépoussiérage":true}}`)
	got := Compute(l)
	if got.BaseAmount != 34.10 {
		t.Fatalf("expected base 34.10 got %.2f", got.BaseAmount)
	}
}

func TestComputeDeterministic(t *testing.T) {
	l := decodeListing(t, `{"squareMeters":180,"startTime":"08:15","endTime":"13:45","services":{"Nettoyage des vitres":true,"Changement des draps":true}}`)
	first := Compute(l)
	for i := 0; i < 10; i++ {
		if got := Compute(l); got != first {
			t.Fatalf("expected identical results, got %+v then %+v", first, got)
		}
	}
}

func TestComputeCommissionInvariant(t *testing.T) {
	windows := []string{"09:00", "10:30", "13:45", "18:05"}
	areas := []float64{0, 40, 101, 260, 505}
	for _, start := range windows {
		for _, area := range areas {
			l := models.FrontendListing{
				StartTime:    models.FlexTime(start),
				EndTime:      models.FlexTime("20:00"),
				SquareMeters: &models.FlexFloat{Val: area, OK: true},
			}
			got := Compute(l)
			if want := round2(got.BaseAmount * CommissionRate); got.Commission != want {
				t.Fatalf("commission invariant broken for start=%s area=%.0f: %.2f != %.2f", start, area, got.Commission, want)
			}
			if want := round2(got.BaseAmount + got.Commission); got.TotalAmount != want {
				t.Fatalf("total invariant broken for start=%s area=%.0f: %.2f != %.2f", start, area, got.TotalAmount, want)
			}
		}
	}
}

func TestComputeTimestampAndClockAgree(t *testing.T) {
	clock := decodeListing(t, `{"startTime":"09:00","endTime":"11:00"}`)
	stamp := decodeListing(t, `{"startTime":"2026-03-14T09:00:00Z","endTime":"2026-03-14T11:00:00Z"}`)
	if Compute(clock) != Compute(stamp) {
		t.Fatalf("wall-clock and timestamp inputs should price identically")
	}
}
