package repository

import (
	"context"
	"time"

	"stayline/internal/domain/hotel"
	"stayline/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type HotelRepository struct {
	db db.DBTX
}

func NewHotelRepository(db db.DBTX) *HotelRepository {
	return &HotelRepository{db: db}
}

const insertHotel = `
INSERT INTO hotels (id, admin_id, name, city, description, address, amenities, images, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
`

func (r *HotelRepository) Create(ctx context.Context, tx db.DBTX, h *hotel.Hotel) error {
	_, err := tx.Exec(ctx, insertHotel,
		h.ID(), h.AdminID(), h.Name(), h.City(), h.Description(), h.Address(), h.Amenities(), h.Images())
	if err != nil {
		return wrapQueryErr("failed to create hotel", err)
	}
	return nil
}

const updateHotel = `
UPDATE hotels
SET name = $2, city = $3, description = $4, address = $5, amenities = $6, images = $7, updated_at = now()
WHERE id = $1
`

func (r *HotelRepository) Update(ctx context.Context, tx db.DBTX, h *hotel.Hotel) error {
	tag, err := tx.Exec(ctx, updateHotel,
		h.ID(), h.Name(), h.City(), h.Description(), h.Address(), h.Amenities(), h.Images())
	if err != nil {
		return wrapQueryErr("failed to update hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapQueryErr("hotel not found", pgx.ErrNoRows)
	}
	return nil
}

const selectHotel = `
SELECT id, admin_id, name, city, description, address, amenities, images, created_at, updated_at
FROM hotels
`

func (r *HotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	row := r.db.QueryRow(ctx, selectHotel+` WHERE id = $1`, id)
	h, err := scanHotel(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find hotel by id", err)
	}
	return h, nil
}

// List returns hotels, optionally filtered by a case-insensitive city
// substring match.
func (r *HotelRepository) List(ctx context.Context, city string) ([]*hotel.Hotel, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if city != "" {
		rows, err = r.db.Query(ctx, selectHotel+` WHERE city ILIKE '%' || $1 || '%' ORDER BY name`, city)
	} else {
		rows, err = r.db.Query(ctx, selectHotel+` ORDER BY name`)
	}
	if err != nil {
		return nil, wrapQueryErr("failed to list hotels", err)
	}
	defer rows.Close()

	return collectHotels(rows)
}

func (r *HotelRepository) ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]*hotel.Hotel, error) {
	rows, err := r.db.Query(ctx, selectHotel+` WHERE admin_id = $1 ORDER BY name`, adminID)
	if err != nil {
		return nil, wrapQueryErr("failed to list hotels by admin", err)
	}
	defer rows.Close()

	return collectHotels(rows)
}

func collectHotels(rows pgx.Rows) ([]*hotel.Hotel, error) {
	var hotels []*hotel.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan hotel row", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to iterate hotel rows", err)
	}
	return hotels, nil
}

func scanHotel(row pgx.Row) (*hotel.Hotel, error) {
	var (
		id, adminID                      uuid.UUID
		name, city, description, address string
		amenities, images                []string
		createdAt, updatedAt             time.Time
	)
	if err := row.Scan(&id, &adminID, &name, &city, &description, &address, &amenities, &images, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return hotel.ReconstructHotel(id, adminID, name, city, description, address, amenities, images, createdAt, updatedAt), nil
}
