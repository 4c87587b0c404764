package app_test

import (
	"context"
	"encoding/json"

	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
)

// ---- fakes ----

type fakeCatalog struct{ hotels []domain.Hotel }

func (f *fakeCatalog) List(ctx context.Context) ([]domain.Hotel, error) {
	out := make([]domain.Hotel, len(f.hotels))
	copy(out, f.hotels)
	return out, nil
}

func (f *fakeCatalog) Get(ctx context.Context, id int64) (domain.Hotel, error) {
	for _, h := range f.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, domain.ErrNotFound
}

// fakeCache round-trips through JSON so cached values cannot alias.
type fakeCache struct{ store map[string][]byte }

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, _ := json.Marshal(v)
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

type fakeStore struct {
	favorites []int64
	bookings  []domain.Booking
}

func (s *fakeStore) Favorites(ctx context.Context) ([]int64, error) {
	return append([]int64(nil), s.favorites...), nil
}

func (s *fakeStore) SaveFavorites(ctx context.Context, ids []int64) error {
	s.favorites = append([]int64(nil), ids...)
	return nil
}

func (s *fakeStore) Bookings(ctx context.Context) ([]domain.Booking, error) {
	return append([]domain.Booking(nil), s.bookings...), nil
}

func (s *fakeStore) SaveBookings(ctx context.Context, bs []domain.Booking) error {
	s.bookings = append([]domain.Booking(nil), bs...)
	return nil
}

// ---- shared fixtures ----

func testHotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID: 1, Name: "Gran Hotel Paradise", Location: "San Juan, Puerto Rico", Price: 189,
			Rooms: []domain.Room{
				{ID: 1, Name: "Habitación Estándar", Capacity: 2, Price: 189},
				{ID: 2, Name: "Suite Deluxe", Capacity: 3, Price: 289},
			},
		},
		{
			ID: 2, Name: "Tropical Beach Resort", Location: "Dorado, Puerto Rico", Price: 159,
			Rooms: []domain.Room{
				{ID: 1, Name: "Habitación Vista Jardín", Capacity: 2, Price: 159},
			},
		},
	}
}

func validDraft() domain.BookingDraft {
	return domain.BookingDraft{
		Name:       "Ana Rivera",
		Email:      "ana@example.com",
		Phone:      "787-555-0199",
		CardNumber: "4111111111111111",
		ExpDate:    "11/27",
		CVV:        "123",
	}
}
