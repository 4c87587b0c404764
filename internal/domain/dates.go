package domain

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// Defaults used when the user has not picked dates yet.
const (
	DefaultCheckIn  = "2025-11-15"
	DefaultCheckOut = "2025-11-18"
	defaultNights   = 3
)

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// NightsBetween returns the number of nights charged between two ISO dates.
// Either date absent or unparseable yields the default of 3 nights; the
// result is always >= 1, even for same-day or inverted input.
func NightsBetween(checkIn, checkOut string) int {
	in, okIn := parseDate(checkIn)
	out, okOut := parseDate(checkOut)
	if !okIn || !okOut {
		return defaultNights
	}
	nights := int(math.Round(out.Sub(in).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// AddDays returns the ISO date n whole days after date, with month and year
// rollover. An unparseable input is returned unchanged.
func AddDays(date string, n int) string {
	d, ok := parseDate(date)
	if !ok {
		return date
	}
	return d.AddDate(0, 0, n).Format(dateLayout)
}

// Stay is the check-in/check-out/nights triple shown on the booking screen.
// Exactly one of {check-out, nights} is derived at any moment, chosen by
// whichever field the user last edited.
type Stay struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights"`
}

type StayField int

const (
	EditCheckIn StayField = iota
	EditCheckOut
	EditNights
)

// NewStay seeds a stay from search criteria, falling back to the default
// dates when the user skipped the pickers.
func NewStay(checkIn, checkOut string) Stay {
	if checkIn == "" {
		checkIn = DefaultCheckIn
	}
	if checkOut == "" {
		checkOut = DefaultCheckOut
	}
	return Stay{CheckIn: checkIn, CheckOut: checkOut, Nights: NightsBetween(checkIn, checkOut)}
}

// Edit applies a single user edit and reconciles the other fields. Editing
// check-in pushes check-out forward by the held night count when the current
// check-out is not strictly after the new check-in, otherwise recomputes
// nights from the unchanged check-out. Editing check-out recomputes nights.
// Editing nights clamps to >= 1 and recomputes check-out.
//
// ISO dates compare correctly as strings, so no parsing is needed for the
// ordering check.
func (s Stay) Edit(field StayField, date string, nights int) Stay {
	next := s
	switch field {
	case EditCheckIn:
		next.CheckIn = date
		held := s.Nights
		if held < 1 {
			held = 1
		}
		if s.CheckOut <= date {
			next.CheckOut = AddDays(date, held)
			next.Nights = held
		} else {
			next.Nights = NightsBetween(date, s.CheckOut)
		}
	case EditCheckOut:
		next.CheckOut = date
		next.Nights = NightsBetween(s.CheckIn, date)
	case EditNights:
		if nights < 1 {
			nights = 1
		}
		next.Nights = nights
		next.CheckOut = AddDays(s.CheckIn, nights)
	}
	return next
}

// TotalPrice is the charge for a room across the whole stay.
func (s Stay) TotalPrice(r Room) int { return r.Price * s.Nights }
