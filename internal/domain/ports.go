package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Catalog is the read-only hotel catalog. The core never owns its sourcing:
// implementations may be in-memory, database-backed, or a remote service.
type Catalog interface {
	List(ctx context.Context) ([]Hotel, error)
	Get(ctx context.Context, id int64) (Hotel, error)
}

// FavoritesStore persists the user's favorite hotel ids. Loads must tolerate
// absent or corrupt data by resolving to an empty set.
type FavoritesStore interface {
	Favorites(ctx context.Context) ([]int64, error)
	SaveFavorites(ctx context.Context, ids []int64) error
}

// BookingStore persists completed bookings, newest first. Same tolerance
// contract as FavoritesStore.
type BookingStore interface {
	Bookings(ctx context.Context) ([]Booking, error)
	SaveBookings(ctx context.Context, bs []Booking) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
