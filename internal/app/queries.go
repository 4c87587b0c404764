package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
)

type QueryService struct {
	catalog  domain.Catalog
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(c domain.Catalog, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{catalog: c, cache: cache, cacheTTL: ttl}
}

// SearchHotels filters the catalog by the matching predicate. Results are
// cached per normalized (query, guests) pair.
func (s *QueryService) SearchHotels(ctx context.Context, query string, guests int) ([]domain.Hotel, error) {
	key := fmt.Sprintf("search:%s:%d", strings.ToLower(strings.TrimSpace(query)), guests)
	var out []domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	hotels, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	out = make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if domain.Matches(h, query, guests) {
			out = append(out, h)
		}
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *QueryService) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	key := fmt.Sprintf("hotel:%d", id)
	var h domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &h); ok {
		return h, nil
	}
	h, err := s.catalog.Get(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	return h, nil
}

func (s *QueryService) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	h, err := s.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return h.Rooms, nil
}
