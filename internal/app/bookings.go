package app

import (
	"context"
	"strings"
	"time"

	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
)

// BookingService owns the confirm flow and the two persisted collections.
// Both stores write back synchronously on every mutation.
type BookingService struct {
	bookings  domain.BookingStore
	favorites domain.FavoritesStore
	now       func() time.Time
	newCode   func() string
}

func NewBookingService(b domain.BookingStore, f domain.FavoritesStore) *BookingService {
	return &BookingService{
		bookings:  b,
		favorites: f,
		now:       time.Now,
		newCode:   domain.NewConfirmationNumber,
	}
}

// Confirm validates the draft and, when it passes, appends a new immutable
// booking at the front of the persisted list. A non-empty ValidationErrors
// return means nothing was persisted.
func (s *BookingService) Confirm(ctx context.Context, hotel domain.Hotel, room domain.Room, stay domain.Stay, draft domain.BookingDraft) (domain.Booking, domain.ValidationErrors, error) {
	if errs := draft.Validate(); len(errs) > 0 {
		return domain.Booking{}, errs, nil
	}

	guest := strings.TrimSpace(draft.Name)
	if guest == "" {
		guest = "Usuario"
	}
	now := s.now()
	b := domain.Booking{
		ID:                 now.UnixMilli(),
		ConfirmationNumber: s.newCode(),
		Hotel:              hotel, // snapshot by value: catalog changes never rewrite history
		Room:               room,
		CheckIn:            stay.CheckIn,
		CheckOut:           stay.CheckOut,
		GuestName:          guest,
		TotalNights:        stay.Nights,
		TotalPrice:         stay.TotalPrice(room),
		CreatedAt:          now.UTC(),
	}

	existing, err := s.bookings.Bookings(ctx)
	if err != nil {
		return domain.Booking{}, nil, err
	}
	if err := s.bookings.SaveBookings(ctx, append([]domain.Booking{b}, existing...)); err != nil {
		return domain.Booking{}, nil, err
	}
	return b, nil, nil
}

// SavedBookings returns the persisted bookings, newest first.
func (s *BookingService) SavedBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.Bookings(ctx)
}

// FindBooking looks a saved booking up by its confirmation number.
func (s *BookingService) FindBooking(ctx context.Context, code string) (domain.Booking, error) {
	bs, err := s.bookings.Bookings(ctx)
	if err != nil {
		return domain.Booking{}, err
	}
	for _, b := range bs {
		if b.ConfirmationNumber == code {
			return b, nil
		}
	}
	return domain.Booking{}, domain.ErrNotFound
}

// ToggleFavorite flips membership of a hotel id and reports the resulting
// state. Toggling twice restores the original set.
func (s *BookingService) ToggleFavorite(ctx context.Context, hotelID int64) (added bool, err error) {
	ids, err := s.favorites.Favorites(ctx)
	if err != nil {
		return false, err
	}
	next := make([]int64, 0, len(ids)+1)
	for _, id := range ids {
		if id != hotelID {
			next = append(next, id)
		}
	}
	added = len(next) == len(ids)
	if added {
		next = append(next, hotelID)
	}
	if err := s.favorites.SaveFavorites(ctx, next); err != nil {
		return false, err
	}
	return added, nil
}

// FavoriteIDs returns the persisted favorite hotel ids.
func (s *BookingService) FavoriteIDs(ctx context.Context) ([]int64, error) {
	return s.favorites.Favorites(ctx)
}

// FavoriteHotels resolves the favorite ids against the catalog, skipping ids
// the catalog no longer knows.
func (s *BookingService) FavoriteHotels(ctx context.Context, q *QueryService) ([]domain.Hotel, error) {
	ids, err := s.favorites.Favorites(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Hotel, 0, len(ids))
	for _, id := range ids {
		h, err := q.GetHotel(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}
