package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
)

// Repo is a MySQL-backed catalog. Amenities are stored as a JSON column,
// rooms in a child table keyed by (hotel_id, id).
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

// Open dials MySQL with the pool settings used by both binaries.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// EnsureSchema creates the catalog tables when they do not exist yet.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	for _, ddl := range []string{createHotelsSQL, createRoomsSQL} {
		if _, err := r.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// UpsertHotel writes the hotel row and replaces its room rows. Used by the
// seeder; reads never mutate.
func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	amenities, err := json.Marshal(h.Amenities)
	if err != nil {
		return fmt.Errorf("marshal amenities: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, upsertHotelSQL,
		h.ID, h.Name, h.Location, h.Rating, h.Reviews, h.Price,
		h.Image, h.Distance, amenities, h.Description,
	); err != nil {
		return fmt.Errorf("upsert hotel %d: %w", h.ID, err)
	}

	if len(h.Rooms) > 0 {
		var (
			sb   strings.Builder
			args []any
		)
		sb.WriteString(insertRoomsPrefix)
		for i, rm := range h.Rooms {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("(?, ?, ?, ?, ?, ?, ?)")
			args = append(args, h.ID, rm.ID, rm.Name, rm.Capacity, rm.Size, rm.Price, rm.Image)
		}
		sb.WriteString(insertRoomsOnDup)
		if _, err := tx.ExecContext(ctx, sb.String(), args...); err != nil {
			return fmt.Errorf("upsert rooms for hotel %d: %w", h.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Get returns a single hotel with its rooms.
func (r *Repo) Get(ctx context.Context, id int64) (domain.Hotel, error) {
	row := r.db.QueryRowContext(ctx, getHotelSQL, id)
	h, err := scanHotel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Hotel{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("get hotel %d: %w", id, err)
	}

	rooms, err := r.rooms(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	h.Rooms = rooms[id]
	return h, nil
}

// List returns the whole catalog ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	var (
		hotels []domain.Hotel
		ids    []int64
	)
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		hotels = append(hotels, h)
		ids = append(ids, h.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	if len(hotels) == 0 {
		return nil, nil
	}

	byHotel, err := r.rooms(ctx, ids...)
	if err != nil {
		return nil, err
	}
	for i := range hotels {
		hotels[i].Rooms = byHotel[hotels[i].ID]
	}
	return hotels, nil
}

func (r *Repo) rooms(ctx context.Context, ids ...int64) (map[int64][]domain.Room, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(listRoomsSQL, placeholders), args...)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]domain.Room)
	for rows.Next() {
		var (
			hotelID int64
			rm      domain.Room
		)
		if err := rows.Scan(&hotelID, &rm.ID, &rm.Name, &rm.Capacity, &rm.Size, &rm.Price, &rm.Image); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		out[hotelID] = append(out[hotelID], rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHotel(row rowScanner) (domain.Hotel, error) {
	var (
		h         domain.Hotel
		amenities []byte
	)
	if err := row.Scan(
		&h.ID, &h.Name, &h.Location, &h.Rating, &h.Reviews, &h.Price,
		&h.Image, &h.Distance, &amenities, &h.Description,
	); err != nil {
		return domain.Hotel{}, err
	}
	if len(amenities) > 0 {
		if err := json.Unmarshal(amenities, &h.Amenities); err != nil {
			return domain.Hotel{}, fmt.Errorf("decode amenities for hotel %d: %w", h.ID, err)
		}
	}
	return h, nil
}
