package app

import (
	"context"
	crand "crypto/rand"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
)

// Screen identifies one of the mutually exclusive application screens.
type Screen string

const (
	ScreenHome         Screen = "home"
	ScreenResults      Screen = "results"
	ScreenDetail       Screen = "detail"
	ScreenRooms        Screen = "rooms"
	ScreenBooking      Screen = "booking"
	ScreenConfirmation Screen = "confirmation"
	ScreenSaved        Screen = "saved"
	ScreenFavorites    Screen = "favorites"
)

func (s Screen) valid() bool {
	switch s {
	case ScreenHome, ScreenResults, ScreenDetail, ScreenRooms,
		ScreenBooking, ScreenConfirmation, ScreenSaved, ScreenFavorites:
		return true
	}
	return false
}

// State is the complete UI state of one session: exactly one active screen
// plus two independent overlay flags. Screens render this read-only.
type State struct {
	Screen             Screen                  `json:"screen"`
	Criteria           domain.SearchCriteria   `json:"criteria"`
	SelectedHotel      *domain.Hotel           `json:"selectedHotel,omitempty"`
	SelectedRoom       *domain.Room            `json:"selectedRoom,omitempty"`
	Stay               domain.Stay             `json:"stay"`
	Draft              domain.BookingDraft     `json:"draft"`
	Errors             domain.ValidationErrors `json:"errors,omitempty"`
	ConfirmationNumber string                  `json:"confirmationNumber,omitempty"`
	MenuOpen           bool                    `json:"menuOpen"`
	FiltersOpen        bool                    `json:"filtersOpen"`
}

// Session is the screen controller: it owns all mutable UI state and applies
// explicit user-triggered transitions. Violated preconditions are silent
// no-ops; the session is long-lived and cycles between screens indefinitely.
type Session struct {
	id       string
	queries  *QueryService
	bookings *BookingService

	mu    sync.Mutex
	state State
}

func newSession(id string, q *QueryService, b *BookingService) *Session {
	return &Session{
		id:       id,
		queries:  q,
		bookings: b,
		state: State{
			Screen:   ScreenHome,
			Criteria: domain.SearchCriteria{Guests: 2},
		},
	}
}

func (s *Session) ID() string { return s.id }

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Navigate switches to a screen by name. Unknown screens are ignored.
func (s *Session) Navigate(screen Screen) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if screen.valid() {
		s.state.Screen = screen
	}
	return s.state
}

func (s *Session) SetMenu(open bool) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.MenuOpen = open
	return s.state
}

func (s *Session) SetFilters(open bool) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.FiltersOpen = open
	return s.state
}

func (s *Session) UpdateCriteria(c domain.SearchCriteria) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Criteria = c
	return s.state
}

// Search moves to results when a destination was typed; a blank destination
// keeps the current screen.
func (s *Session) Search() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(s.state.Criteria.Destination) != "" {
		s.state.Screen = ScreenResults
	}
	return s.state
}

// SelectHotel records the selection and moves to the detail screen.
func (s *Session) SelectHotel(ctx context.Context, hotelID int64) (State, error) {
	h, err := s.queries.GetHotel(ctx, hotelID)
	if err != nil {
		return s.State(), err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedHotel = &h
	s.state.Screen = ScreenDetail
	return s.state, nil
}

// SelectRoom records the room and opens the booking form, seeding the stay
// from the search criteria. No-op without a selected hotel or for an
// unknown room id.
func (s *Session) SelectRoom(roomID int64) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.SelectedHotel == nil {
		return s.state
	}
	r, ok := s.state.SelectedHotel.RoomByID(roomID)
	if !ok {
		return s.state
	}
	s.state.SelectedRoom = &r
	s.state.Stay = domain.NewStay(s.state.Criteria.CheckIn, s.state.Criteria.CheckOut)
	s.state.Screen = ScreenBooking
	return s.state
}

// EditStay applies one edit to the check-in/check-out/nights triple.
func (s *Session) EditStay(field domain.StayField, date string, nights int) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Stay = s.state.Stay.Edit(field, date, nights)
	return s.state
}

func (s *Session) UpdateDraft(d domain.BookingDraft) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Draft = d
	return s.state
}

// Confirm runs the booking flow: validation failures keep the booking screen
// and surface field errors; success persists the booking, records the
// confirmation number, and moves to the confirmation screen. Confirming
// without a selected hotel and room is a silent no-op.
func (s *Session) Confirm(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.SelectedHotel == nil || s.state.SelectedRoom == nil {
		return s.state, nil
	}

	// The booking screen's dates are authoritative at confirm time.
	s.state.Criteria.CheckIn = s.state.Stay.CheckIn
	s.state.Criteria.CheckOut = s.state.Stay.CheckOut

	b, errs, err := s.bookings.Confirm(ctx, *s.state.SelectedHotel, *s.state.SelectedRoom, s.state.Stay, s.state.Draft)
	if err != nil {
		return s.state, err
	}
	if len(errs) > 0 {
		s.state.Errors = errs
		return s.state, nil
	}
	s.state.Errors = nil
	s.state.ConfirmationNumber = b.ConfirmationNumber
	s.state.Screen = ScreenConfirmation
	return s.state, nil
}

// ReturnHome leaves the confirmation screen, clearing the selection and the
// booking draft.
func (s *Session) ReturnHome() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Screen = ScreenHome
	s.state.SelectedHotel = nil
	s.state.SelectedRoom = nil
	s.state.Draft = domain.BookingDraft{}
	s.state.Errors = nil
	s.state.ConfirmationNumber = ""
	return s.state
}

// SessionManager hands out and tracks long-lived sessions.
type SessionManager struct {
	queries  *QueryService
	bookings *BookingService

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionManager(q *QueryService, b *BookingService) *SessionManager {
	return &SessionManager{queries: q, bookings: b, sessions: map[string]*Session{}}
}

func (m *SessionManager) Create() *Session {
	var buf [16]byte
	_, _ = crand.Read(buf[:])
	s := newSession(hex.EncodeToString(buf[:]), m.queries, m.bookings)
	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
	return s
}

func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}
