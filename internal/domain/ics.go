package domain

import (
	"fmt"
	"strings"
	"time"
)

// CalendarEvent is a single calendar-interchange event. Generic calendar
// applications accept the rendered document as a .ics file.
type CalendarEvent struct {
	Title       string
	Location    string
	Start       time.Time
	End         time.Time
	Description string
}

const icsStampLayout = "20060102T150405Z"

// ICS renders a one-event iCalendar document with UTC timestamps and fixed
// product/version headers.
func (e CalendarEvent) ICS() []byte {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//HotelBooker//ES",
		"BEGIN:VEVENT",
		"SUMMARY:" + e.Title,
		"LOCATION:" + e.Location,
		"DTSTART:" + e.Start.UTC().Format(icsStampLayout),
		"DTEND:" + e.End.UTC().Format(icsStampLayout),
		"DESCRIPTION:" + e.Description,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return []byte(strings.Join(lines, "\n"))
}

// CalendarEvent builds the stay event for a booking: check-in day at 15:00
// UTC through check-out day at 11:00 UTC.
func (b Booking) CalendarEvent() CalendarEvent {
	return CalendarEvent{
		Title:       "Check-in: " + b.Hotel.Name,
		Location:    b.Hotel.Location,
		Start:       atHourUTC(b.CheckIn, 15),
		End:         atHourUTC(b.CheckOut, 11),
		Description: fmt.Sprintf("Reserva %s - %s", b.ConfirmationNumber, b.Room.Name),
	}
}

func atHourUTC(date string, hour int) time.Time {
	d, ok := parseDate(date)
	if !ok {
		d = time.Now().UTC()
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}
