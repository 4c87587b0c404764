package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/nickalexanderalicea-source/hotel-booker/internal/adapters/observability"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/app"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
)

type Handlers struct {
	Q        *app.QueryService
	B        *app.BookingService
	Sessions *app.SessionManager
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/v1/hotels", h.listHotels)
	s.mux.Get("/v1/hotels/{id}", h.getHotel)
	s.mux.Get("/v1/hotels/{id}/rooms", h.listRooms)

	s.mux.Post("/v1/sessions", h.createSession)
	s.mux.Get("/v1/sessions/{id}", h.getSession)
	s.mux.Post("/v1/sessions/{id}/navigate", h.navigate)
	s.mux.Post("/v1/sessions/{id}/search", h.search)
	s.mux.Post("/v1/sessions/{id}/select-hotel", h.selectHotel)
	s.mux.Post("/v1/sessions/{id}/select-room", h.selectRoom)
	s.mux.Post("/v1/sessions/{id}/stay", h.editStay)
	s.mux.Post("/v1/sessions/{id}/draft", h.updateDraft)
	s.mux.Post("/v1/sessions/{id}/confirm", h.confirm)
	s.mux.Post("/v1/sessions/{id}/home", h.returnHome)

	s.mux.Get("/v1/favorites", h.listFavorites)
	s.mux.Post("/v1/favorites/{hotelID}/toggle", h.toggleFavorite)

	s.mux.Get("/v1/bookings", h.listBookings)
	s.mux.Get("/v1/bookings/{code}/calendar.ics", h.bookingCalendar)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return false
	}
	return true
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- catalog ----

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	// Non-numeric guest input means "no capacity constraint".
	guests, _ := strconv.Atoi(r.URL.Query().Get("guests"))
	hotels, err := h.Q.SearchHotels(r.Context(), q, guests)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Search Failed", err.Error())
		return
	}
	writeWithETag(w, r, struct {
		Items []domain.Hotel `json:"items"`
		Count int            `json:"count"`
	}{Items: hotels, Count: len(hotels)})
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	hotel, err := h.Q.GetHotel(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	writeWithETag(w, r, hotel)
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	rooms, err := h.Q.ListRooms(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Items []domain.Room `json:"items"`
	}{Items: rooms})
}

// ---- sessions ----

type sessionResponse struct {
	ID    string    `json:"id"`
	State app.State `json:"state"`
}

func (h *Handlers) session(w http.ResponseWriter, r *http.Request) (*app.Session, bool) {
	s, ok := h.Sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown session")
		return nil, false
	}
	return s, true
}

func (h *Handlers) createSession(w http.ResponseWriter, r *http.Request) {
	s := h.Sessions.Create()
	writeJSON(w, http.StatusCreated, sessionResponse{ID: s.ID(), State: s.State()})
}

func (h *Handlers) getSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: s.ID(), State: s.State()})
}

func (h *Handlers) navigate(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var body struct {
		Screen  *string `json:"screen"`
		Menu    *bool   `json:"menu"`
		Filters *bool   `json:"filters"`
	}
	if !decode(w, r, &body) {
		return
	}
	st := s.State()
	if body.Screen != nil {
		st = s.Navigate(app.Screen(*body.Screen))
	}
	if body.Menu != nil {
		st = s.SetMenu(*body.Menu)
	}
	if body.Filters != nil {
		st = s.SetFilters(*body.Filters)
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: s.ID(), State: st})
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var c domain.SearchCriteria
	if !decode(w, r, &c) {
		return
	}
	s.UpdateCriteria(c)
	writeJSON(w, http.StatusOK, sessionResponse{ID: s.ID(), State: s.Search()})
}

func (h *Handlers) selectHotel(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var body struct {
		HotelID int64 `json:"hotelId"`
	}
	if !decode(w, r, &body) {
		return
	}
	st, err := s.SelectHotel(r.Context(), body.HotelID)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: s.ID(), State: st})
}

func (h *Handlers) selectRoom(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var body struct {
		RoomID int64 `json:"roomId"`
	}
	if !decode(w, r, &body) {
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: s.ID(), State: s.SelectRoom(body.RoomID)})
}

func stayField(name string) (domain.StayField, bool) {
	switch name {
	case "checkIn":
		return domain.EditCheckIn, true
	case "checkOut":
		return domain.EditCheckOut, true
	case "nights":
		return domain.EditNights, true
	}
	return 0, false
}

func (h *Handlers) editStay(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var body struct {
		Field  string `json:"field"`
		Date   string `json:"date"`
		Nights int    `json:"nights"`
	}
	if !decode(w, r, &body) {
		return
	}
	field, ok := stayField(body.Field)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid Field", "field must be checkIn, checkOut or nights")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: s.ID(), State: s.EditStay(field, body.Date, body.Nights)})
}

func (h *Handlers) updateDraft(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var d domain.BookingDraft
	if !decode(w, r, &d) {
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: s.ID(), State: s.UpdateDraft(d)})
}

func (h *Handlers) confirm(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	before := s.State()
	st, err := s.Confirm(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Confirm Failed", err.Error())
		return
	}
	if st.Screen == app.ScreenConfirmation && before.Screen != app.ScreenConfirmation {
		observability.ObserveBooking()
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: s.ID(), State: st})
}

func (h *Handlers) returnHome(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: s.ID(), State: s.ReturnHome()})
}

// ---- favorites ----

func (h *Handlers) listFavorites(w http.ResponseWriter, r *http.Request) {
	ids, err := h.B.FavoriteIDs(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Storage Failed", err.Error())
		return
	}
	hotels, err := h.B.FavoriteHotels(r.Context(), h.Q)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Storage Failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, struct {
		IDs    []int64        `json:"ids"`
		Hotels []domain.Hotel `json:"hotels"`
	}{IDs: ids, Hotels: hotels})
}

func (h *Handlers) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "hotelID"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "hotelID must be a number")
		return
	}
	added, err := h.B.ToggleFavorite(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Storage Failed", err.Error())
		return
	}
	observability.ObserveFavoriteToggle(added)
	ids, _ := h.B.FavoriteIDs(r.Context())
	writeJSON(w, http.StatusOK, struct {
		Added bool    `json:"added"`
		IDs   []int64 `json:"ids"`
	}{Added: added, IDs: ids})
}

// ---- bookings ----

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	bs, err := h.B.SavedBookings(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Storage Failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Items []domain.Booking `json:"items"`
		Count int              `json:"count"`
	}{Items: bs, Count: len(bs)})
}

func (h *Handlers) bookingCalendar(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	b, err := h.B.FindBooking(r.Context(), code)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "booking not found")
		return
	}
	ics := b.CalendarEvent().ICS()
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="reserva.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(ics); err != nil {
		log.Error().Err(err).Msg("failed to write calendar body")
	}
}
