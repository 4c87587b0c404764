package redisad

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
)

// Fixed storage keys for the two persisted collections.
const (
	favoritesKey = "hb:favorites"
	bookingsKey  = "hb:bookings"
)

// Store is the durability boundary for favorites and saved bookings. Every
// mutation is written back synchronously; corrupt or absent values load as
// the empty collection and never fail startup.
type Store struct{ c *redis.Client }

func NewStore(addr, pass string, db int) *Store {
	return &Store{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (s *Store) Favorites(ctx context.Context) ([]int64, error) {
	raw, err := s.load(ctx, favoritesKey)
	if err != nil || raw == nil {
		return nil, err
	}
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		log.Warn().Str("key", favoritesKey).Err(err).Msg("corrupt stored value, resetting to empty")
		return nil, nil
	}
	return ids, nil
}

func (s *Store) SaveFavorites(ctx context.Context, ids []int64) error {
	return s.save(ctx, favoritesKey, ids)
}

func (s *Store) Bookings(ctx context.Context) ([]domain.Booking, error) {
	raw, err := s.load(ctx, bookingsKey)
	if err != nil || raw == nil {
		return nil, err
	}
	var bs []domain.Booking
	if err := json.Unmarshal(raw, &bs); err != nil {
		log.Warn().Str("key", bookingsKey).Err(err).Msg("corrupt stored value, resetting to empty")
		return nil, nil
	}
	return bs, nil
}

func (s *Store) SaveBookings(ctx context.Context, bs []domain.Booking) error {
	return s.save(ctx, bookingsKey, bs)
}

func (s *Store) load(ctx context.Context, key string) ([]byte, error) {
	v, err := s.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.c.Set(ctx, key, b, 0).Err()
}
