package httpserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/nickalexanderalicea-source/hotel-booker/internal/adapters/httpserver"
	redisad "github.com/nickalexanderalicea-source/hotel-booker/internal/adapters/redis"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/app"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/catalog"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mr := miniredis.RunT(t)
	store := redisad.NewStore(mr.Addr(), "", 0)
	cache := redisad.New(mr.Addr(), "", 0)

	q := app.NewQueryService(catalog.NewBuiltin(), cache, time.Minute)
	b := app.NewBookingService(store, store)

	srv := httpserver.New(0) // no rate limit in tests
	srv.MountHandlers(&httpserver.Handlers{Q: q, B: b, Sessions: app.NewSessionManager(q, b)})

	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any, dst any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	res, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { res.Body.Close() })
	if dst != nil {
		if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return res
}

func getJSON(t *testing.T, url string, dst any) *http.Response {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { res.Body.Close() })
	if dst != nil {
		if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return res
}

type sessionResp struct {
	ID    string    `json:"id"`
	State app.State `json:"state"`
}

func TestListHotels_FilterAndETag(t *testing.T) {
	ts := newTestServer(t)

	var out struct {
		Items []domain.Hotel `json:"items"`
		Count int            `json:"count"`
	}
	res := getJSON(t, ts.URL+"/v1/hotels?q=ponce&guests=2", &out)
	if res.StatusCode != 200 || out.Count != 1 || out.Items[0].Name != "City Center Hotel" {
		t.Fatalf("status=%d out=%+v", res.StatusCode, out)
	}

	etag := res.Header.Get("ETag")
	if etag == "" {
		t.Fatal("expected ETag")
	}
	req, _ := http.NewRequest("GET", ts.URL+"/v1/hotels?q=ponce&guests=2", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", res2.StatusCode)
	}
}

func TestGetHotel_NotFoundProblem(t *testing.T) {
	ts := newTestServer(t)
	res := getJSON(t, ts.URL+"/v1/hotels/999", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type %q", ct)
	}
}

func TestBookingFlow_EndToEnd(t *testing.T) {
	ts := newTestServer(t)

	var sess sessionResp
	res := postJSON(t, ts.URL+"/v1/sessions", nil, &sess)
	if res.StatusCode != http.StatusCreated || sess.State.Screen != app.ScreenHome {
		t.Fatalf("create session: %d %+v", res.StatusCode, sess)
	}
	base := ts.URL + "/v1/sessions/" + sess.ID

	postJSON(t, base+"/search", domain.SearchCriteria{
		Destination: "san juan", CheckIn: "2025-11-15", CheckOut: "2025-11-18", Guests: 2,
	}, &sess)
	if sess.State.Screen != app.ScreenResults {
		t.Fatalf("after search: %+v", sess.State)
	}

	postJSON(t, base+"/select-hotel", map[string]any{"hotelId": 1}, &sess)
	if sess.State.Screen != app.ScreenDetail || sess.State.SelectedHotel == nil {
		t.Fatalf("after select-hotel: %+v", sess.State)
	}

	postJSON(t, base+"/select-room", map[string]any{"roomId": 3}, &sess)
	if sess.State.Screen != app.ScreenBooking || sess.State.SelectedRoom.Price != 489 {
		t.Fatalf("after select-room: %+v", sess.State)
	}

	// Invalid draft first: errors surfaced, still on the booking screen.
	postJSON(t, base+"/draft", domain.BookingDraft{Name: "Ana"}, &sess)
	postJSON(t, base+"/confirm", nil, &sess)
	if sess.State.Screen != app.ScreenBooking || len(sess.State.Errors) == 0 {
		t.Fatalf("invalid confirm: %+v", sess.State)
	}

	postJSON(t, base+"/draft", domain.BookingDraft{
		Name: "Ana Rivera", Email: "ana@example.com", Phone: "787-555-0199",
		CardNumber: "4111 1111 1111 1111", ExpDate: "11/27", CVV: "123",
	}, &sess)
	postJSON(t, base+"/confirm", nil, &sess)
	if sess.State.Screen != app.ScreenConfirmation || sess.State.ConfirmationNumber == "" {
		t.Fatalf("confirm: %+v", sess.State)
	}
	code := sess.State.ConfirmationNumber

	var bookings struct {
		Items []domain.Booking `json:"items"`
	}
	getJSON(t, ts.URL+"/v1/bookings", &bookings)
	if len(bookings.Items) != 1 || bookings.Items[0].TotalPrice != 3*489 {
		t.Fatalf("bookings: %+v", bookings.Items)
	}

	// Calendar export for the saved booking.
	res = getJSON(t, ts.URL+"/v1/bookings/"+code+"/calendar.ics", nil)
	if res.StatusCode != 200 || !strings.HasPrefix(res.Header.Get("Content-Type"), "text/calendar") {
		t.Fatalf("ics: %d %s", res.StatusCode, res.Header.Get("Content-Type"))
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "DTSTART:20251115T150000Z") {
		t.Fatalf("ics body:\n%s", body)
	}

	postJSON(t, base+"/home", nil, &sess)
	if sess.State.Screen != app.ScreenHome || sess.State.SelectedHotel != nil {
		t.Fatalf("after home: %+v", sess.State)
	}
}

func TestSearchWithBlankDestinationStaysPut(t *testing.T) {
	ts := newTestServer(t)
	var sess sessionResp
	postJSON(t, ts.URL+"/v1/sessions", nil, &sess)

	postJSON(t, ts.URL+"/v1/sessions/"+sess.ID+"/search", domain.SearchCriteria{Destination: "   "}, &sess)
	if sess.State.Screen != app.ScreenHome {
		t.Fatalf("blank search must not navigate: %+v", sess.State)
	}
}

func TestFavoritesToggleEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var out struct {
		Added bool    `json:"added"`
		IDs   []int64 `json:"ids"`
	}
	postJSON(t, ts.URL+"/v1/favorites/2/toggle", nil, &out)
	if !out.Added || len(out.IDs) != 1 || out.IDs[0] != 2 {
		t.Fatalf("first toggle: %+v", out)
	}
	postJSON(t, ts.URL+"/v1/favorites/2/toggle", nil, &out)
	if out.Added || len(out.IDs) != 0 {
		t.Fatalf("second toggle: %+v", out)
	}

	var favs struct {
		IDs    []int64        `json:"ids"`
		Hotels []domain.Hotel `json:"hotels"`
	}
	postJSON(t, ts.URL+"/v1/favorites/3/toggle", nil, &out)
	getJSON(t, ts.URL+"/v1/favorites", &favs)
	if len(favs.Hotels) != 1 || favs.Hotels[0].Name != "City Center Hotel" {
		t.Fatalf("favorites: %+v", favs)
	}
}

func TestSessionOverlayNavigation(t *testing.T) {
	ts := newTestServer(t)
	var sess sessionResp
	postJSON(t, ts.URL+"/v1/sessions", nil, &sess)
	base := ts.URL + "/v1/sessions/" + sess.ID

	menu := true
	filters := true
	screen := "results"
	postJSON(t, base+"/navigate", map[string]any{"screen": screen, "menu": menu, "filters": filters}, &sess)
	if sess.State.Screen != app.ScreenResults || !sess.State.MenuOpen || !sess.State.FiltersOpen {
		t.Fatalf("overlays: %+v", sess.State)
	}
}

func TestUnknownSessionIs404(t *testing.T) {
	ts := newTestServer(t)
	res := getJSON(t, ts.URL+"/v1/sessions/deadbeef", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d", res.StatusCode)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	store := redisad.NewStore(mr.Addr(), "", 0)
	q := app.NewQueryService(catalog.NewBuiltin(), cache, time.Minute)
	b := app.NewBookingService(store, store)

	srv := httpserver.New(1) // one request per second, burst 1
	srv.MountHandlers(&httpserver.Handlers{Q: q, B: b, Sessions: app.NewSessionManager(q, b)})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	limited := false
	for i := 0; i < 5; i++ {
		res, err := http.Get(fmt.Sprintf("%s/healthz", ts.URL))
		if err != nil {
			t.Fatal(err)
		}
		res.Body.Close()
		if res.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Fatal("expected at least one 429 under burst")
	}
}
