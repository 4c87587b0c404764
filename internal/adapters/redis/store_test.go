package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "github.com/nickalexanderalicea-source/hotel-booker/internal/adapters/redis"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
)

func newStore(t *testing.T) (*redisad.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.NewStore(mr.Addr(), "", 0), mr
}

func TestFavoritesRoundTrip(t *testing.T) {
	st, _ := newStore(t)
	ctx := context.Background()

	got, err := st.Favorites(ctx)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("fresh store should be empty, got %v", got)
	}

	if err := st.SaveFavorites(ctx, []int64{1, 3}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = st.Favorites(ctx)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("round trip mismatch: %v", got)
	}
}

func TestBookingsRoundTrip(t *testing.T) {
	st, _ := newStore(t)
	ctx := context.Background()

	b := domain.Booking{
		ID:                 1732000000000,
		ConfirmationNumber: "HBAB12CD34",
		Hotel:              domain.Hotel{ID: 1, Name: "Gran Hotel Paradise"},
		Room:               domain.Room{ID: 2, Name: "Suite Deluxe", Price: 289},
		CheckIn:            "2025-11-15",
		CheckOut:           "2025-11-18",
		GuestName:          "Ana",
		TotalNights:        3,
		TotalPrice:         867,
		CreatedAt:          time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := st.SaveBookings(ctx, []domain.Booking{b}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.Bookings(ctx)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 1 || got[0].ConfirmationNumber != "HBAB12CD34" || got[0].TotalPrice != 867 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got[0].CreatedAt.Equal(b.CreatedAt) {
		t.Fatalf("createdAt mismatch: %v", got[0].CreatedAt)
	}
}

func TestCorruptValuesLoadAsEmpty(t *testing.T) {
	st, mr := newStore(t)
	ctx := context.Background()

	mr.Set("hb:favorites", "{not json")
	mr.Set("hb:bookings", "also not json")

	favs, err := st.Favorites(ctx)
	if err != nil || len(favs) != 0 {
		t.Fatalf("corrupt favorites: %v, %v", favs, err)
	}
	bs, err := st.Bookings(ctx)
	if err != nil || len(bs) != 0 {
		t.Fatalf("corrupt bookings: %v, %v", bs, err)
	}
}

func TestCacheGetSetDel(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var out []string
	ok, err := c.Get(ctx, "k", &out)
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := c.Set(ctx, "k", []string{"a", "b"}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	ok, err = c.Get(ctx, "k", &out)
	if err != nil || !ok || len(out) != 2 {
		t.Fatalf("expected hit: ok=%v err=%v out=%v", ok, err, out)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, _ = c.Get(ctx, "k", &out)
	if ok {
		t.Fatal("expected miss after del")
	}
}
