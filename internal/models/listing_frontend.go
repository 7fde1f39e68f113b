package models

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
)

// FrontendListing is the shape the mobile application works with: flat,
// display-oriented, with loosely typed fields. Any field may be absent.
// The same type is also what the adapter hands back to the app, at which
// point every field holds a plain serializable value (dates are RFC 3339
// strings, never time.Time).
type FrontendListing struct {
	ID                string        `json:"id,omitempty"`
	Title             string        `json:"title,omitempty"`
	AccommodationType string        `json:"accommodationType,omitempty"`
	Address           string        `json:"address,omitempty"`
	Date              FlexDate      `json:"date,omitempty"`
	StartTime         FlexTime      `json:"startTime,omitempty"`
	EndTime           FlexTime      `json:"endTime,omitempty"`
	PeopleNeeded      *FlexInt      `json:"peopleNeeded,omitempty"`
	PersonCount       *FlexInt      `json:"personCount,omitempty"`
	Area              *FlexFloat    `json:"area,omitempty"`
	SquareMeters      *FlexFloat    `json:"squareMeters,omitempty"`
	Services          Selection     `json:"services,omitempty"`
	Equipment         Selection     `json:"equipment,omitempty"`
	Notes             string        `json:"notes,omitempty"`
	AdditionalNotes   string        `json:"additionalNotes,omitempty"`
	Price             *PriceValue   `json:"price,omitempty"`
	Status            string        `json:"status,omitempty"`
	ApplicantsCount   int           `json:"applicantsCount"`
	Applications      []Application `json:"applications,omitempty"`
	BookedCleaners    []int         `json:"bookedCleaners,omitempty"`
	Photos            []string      `json:"photos,omitempty"`
	CreatedAt         string        `json:"createdAt,omitempty"`
}

// PriceBreakdown is the three-part price attached to a listing.
type PriceBreakdown struct {
	BaseAmount  float64 `json:"baseAmount"`
	Commission  float64 `json:"commission"`
	TotalAmount float64 `json:"totalAmount"`
}

// PriceValue holds the frontend price field, which is either a plain number
// (interpreted as the total) or a full breakdown object.
type PriceValue struct {
	Amount    float64
	Breakdown *PriceBreakdown
}

func (p *PriceValue) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		p.Amount = f
		p.Breakdown = nil
		return nil
	}
	var br PriceBreakdown
	if err := json.Unmarshal(data, &br); err == nil {
		p.Breakdown = &br
	}
	return nil
}

func (p PriceValue) MarshalJSON() ([]byte, error) {
	if p.Breakdown != nil {
		return json.Marshal(p.Breakdown)
	}
	return json.Marshal(p.Amount)
}

// Selection carries a services/equipment field that arrives either as an
// array of canonical codes or as a map from localized label to checked
// state. It always marshals back as the array form.
type Selection struct {
	items []string
	flags map[string]bool
	isMap bool
}

func NewSelection(items []string) Selection {
	return Selection{items: items}
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = Selection{items: arr}
		return nil
	}
	var m map[string]bool
	if err := json.Unmarshal(data, &m); err == nil {
		*s = Selection{flags: m, isMap: true}
		return nil
	}
	*s = Selection{}
	return nil
}

func (s Selection) MarshalJSON() ([]byte, error) {
	if s.isMap {
		return json.Marshal(s.Checked())
	}
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

func (s Selection) IsMap() bool { return s.isMap }

// Items returns the array form as-is. Meaningless for the map form.
func (s Selection) Items() []string { return s.items }

// Checked returns the labels whose value is true, sorted so that callers
// get a stable order regardless of map iteration.
func (s Selection) Checked() []string {
	out := make([]string, 0, len(s.flags))
	for label, on := range s.flags {
		if on {
			out = append(out, label)
		}
	}
	sort.Strings(out)
	return out
}

func (s Selection) Empty() bool {
	return !s.isMap && len(s.items) == 0
}

// FlexTime is a wall-clock field that may arrive as "HH:mm", as a full
// timestamp string, or as epoch milliseconds from older app builds.
type FlexTime string

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = FlexTime(s)
		return nil
	}
	var ms int64
	if err := json.Unmarshal(data, &ms); err == nil {
		*t = FlexTime(time.UnixMilli(ms).UTC().Format("15:04"))
		return nil
	}
	*t = ""
	return nil
}

// Clock formats a timestamp value to zero-padded "HH:mm" and passes plain
// strings through unchanged.
func (t FlexTime) Clock() string {
	s := string(t)
	if s == "" {
		return ""
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		return parsed.Format("15:04")
	}
	return s
}

// Hours reports the value as fractional hours since midnight. The second
// return value is false when the field holds nothing parseable.
func (t FlexTime) Hours() (float64, bool) {
	s := strings.TrimSpace(string(t))
	if s == "" {
		return 0, false
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		return float64(parsed.Hour()) + float64(parsed.Minute())/60, true
	}
	if parsed, err := time.Parse("15:04", s); err == nil {
		return float64(parsed.Hour()) + float64(parsed.Minute())/60, true
	}
	return 0, false
}

// FlexDate is a calendar date that may arrive as a full timestamp or a bare
// "YYYY-MM-DD" string.
type FlexDate string

func (d *FlexDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = FlexDate(s)
		return nil
	}
	var ms int64
	if err := json.Unmarshal(data, &ms); err == nil {
		*d = FlexDate(time.UnixMilli(ms).UTC().Format(time.RFC3339))
		return nil
	}
	*d = ""
	return nil
}

func (d FlexDate) Time() (time.Time, bool) {
	s := strings.TrimSpace(string(d))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// FlexInt is a count field that may arrive as a number or a numeric string.
// OK is false when the raw value was present but unparseable.
type FlexInt struct {
	Val int
	OK  bool
}

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*n = FlexInt{Val: i, OK: true}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = FlexInt{Val: int(f), OK: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if i, err := strconv.Atoi(s); err == nil {
			*n = FlexInt{Val: i, OK: true}
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*n = FlexInt{Val: int(f), OK: true}
			return nil
		}
	}
	*n = FlexInt{}
	return nil
}

func (n FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Val)
}

// FlexFloat is a measurement field with the same tolerance as FlexInt.
type FlexFloat struct {
	Val float64
	OK  bool
}

func (n *FlexFloat) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = FlexFloat{Val: f, OK: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*n = FlexFloat{Val: f, OK: true}
			return nil
		}
	}
	*n = FlexFloat{}
	return nil
}

func (n FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Val)
}
