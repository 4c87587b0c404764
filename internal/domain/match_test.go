package domain_test

import (
	"testing"

	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
)

func TestMatches(t *testing.T) {
	h := domain.Hotel{
		Name:     "Hotel Test",
		Location: "San Juan",
		Rooms:    []domain.Room{{ID: 1, Capacity: 2}},
	}

	cases := []struct {
		name   string
		query  string
		guests int
		want   bool
	}{
		{"location substring", "san", 2, true},
		{"name substring", "hotel te", 0, true},
		{"case insensitive", "SAN JUAN", 1, true},
		{"wrong location", "ponce", 2, false},
		{"capacity insufficient", "", 3, false},
		{"empty query matches text", "", 2, true},
		{"whitespace query matches text", "   ", 1, true},
		{"zero guests means unconstrained", "san", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.Matches(h, tc.query, tc.guests); got != tc.want {
				t.Fatalf("Matches(%q, %d) = %v, want %v", tc.query, tc.guests, got, tc.want)
			}
		})
	}
}

func TestMatches_NoRooms(t *testing.T) {
	h := domain.Hotel{Name: "Empty", Location: "Nowhere"}
	if domain.Matches(h, "", 1) {
		t.Fatal("hotel without rooms cannot satisfy a guest count")
	}
	if !domain.Matches(h, "empty", 0) {
		t.Fatal("hotel without rooms still matches when guests are unspecified")
	}
}
