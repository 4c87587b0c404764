package domain

import "time"

// SearchCriteria drives results filtering. Dates are ISO YYYY-MM-DD strings;
// empty means "not chosen yet".
type SearchCriteria struct {
	Destination string `json:"destination"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	Guests      int    `json:"guests"`
}

// BookingDraft is the mutable reservation form. It is scratch state: cleared
// on a completed or abandoned booking flow, never persisted as-is.
type BookingDraft struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CardNumber      string `json:"cardNumber"`
	ExpDate         string `json:"expDate"` // MM/YY
	CVV             string `json:"cvv"`
	SpecialRequests string `json:"specialRequests"`
}

// ValidationErrors maps a BookingDraft field name to a human-readable
// message. Absent fields are valid; an empty map means the draft passes.
type ValidationErrors map[string]string

// Booking is the immutable record of a completed reservation. Hotel and Room
// are embedded by value so later catalog changes never rewrite history.
type Booking struct {
	ID                 int64     `json:"id"` // creation time, unix milliseconds
	ConfirmationNumber string    `json:"confirmationNumber"`
	Hotel              Hotel     `json:"hotel"`
	Room               Room      `json:"room"`
	CheckIn            string    `json:"checkIn"`
	CheckOut           string    `json:"checkOut"`
	GuestName          string    `json:"guestName"`
	TotalNights        int       `json:"totalNights"`
	TotalPrice         int       `json:"totalPrice"`
	CreatedAt          time.Time `json:"createdAt"`
}
