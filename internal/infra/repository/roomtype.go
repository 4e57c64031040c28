package repository

import (
	"context"
	"time"

	"stayline/internal/domain/room"
	"stayline/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomTypeRepository struct {
	db db.DBTX
}

func NewRoomTypeRepository(db db.DBTX) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

const insertRoomType = `
INSERT INTO room_types (id, hotel_id, category, nightly_cents, max_occupancy, amenities, images, units, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
`

func (r *RoomTypeRepository) Create(ctx context.Context, tx db.DBTX, rt *room.RoomType) error {
	_, err := tx.Exec(ctx, insertRoomType,
		rt.ID(), rt.HotelID(), rt.Category(), rt.NightlyCents(), rt.MaxOccupancy(),
		rt.Amenities(), rt.Images(), unitsToDB(rt.Units()))
	if err != nil {
		return wrapQueryErr("failed to create room type", err)
	}
	return nil
}

const updateRoomTypeUnits = `
UPDATE room_types SET units = $2, updated_at = now() WHERE id = $1
`

func (r *RoomTypeRepository) UpdateUnits(ctx context.Context, tx db.DBTX, id uuid.UUID, units []int) error {
	tag, err := tx.Exec(ctx, updateRoomTypeUnits, id, unitsToDB(units))
	if err != nil {
		return wrapQueryErr("failed to update room type units", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapQueryErr("room type not found", pgx.ErrNoRows)
	}
	return nil
}

const selectRoomType = `
SELECT id, hotel_id, category, nightly_cents, max_occupancy, amenities, images, units, created_at, updated_at
FROM room_types
`

func (r *RoomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.RoomType, error) {
	row := r.db.QueryRow(ctx, selectRoomType+` WHERE id = $1`, id)
	rt, err := scanRoomType(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find room type by id", err)
	}
	return rt, nil
}

func (r *RoomTypeRepository) FindByHotelAndCategory(ctx context.Context, hotelID uuid.UUID, category string) (*room.RoomType, error) {
	row := r.db.QueryRow(ctx, selectRoomType+` WHERE hotel_id = $1 AND category = $2`, hotelID, category)
	rt, err := scanRoomType(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find room type by category", err)
	}
	return rt, nil
}

func (r *RoomTypeRepository) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*room.RoomType, error) {
	rows, err := r.db.Query(ctx, selectRoomType+` WHERE hotel_id = $1 ORDER BY category`, hotelID)
	if err != nil {
		return nil, wrapQueryErr("failed to list room types", err)
	}
	defer rows.Close()

	return collectRoomTypes(rows)
}

// ListAll feeds ledger hydration at startup.
func (r *RoomTypeRepository) ListAll(ctx context.Context) ([]*room.RoomType, error) {
	rows, err := r.db.Query(ctx, selectRoomType+` ORDER BY created_at`)
	if err != nil {
		return nil, wrapQueryErr("failed to list all room types", err)
	}
	defer rows.Close()

	return collectRoomTypes(rows)
}

func collectRoomTypes(rows pgx.Rows) ([]*room.RoomType, error) {
	var types []*room.RoomType
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan room type row", err)
		}
		types = append(types, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to iterate room type rows", err)
	}
	return types, nil
}

func scanRoomType(row pgx.Row) (*room.RoomType, error) {
	var (
		id, hotelID          uuid.UUID
		category             string
		nightlyCents         int64
		maxOccupancy         int
		amenities, images    []string
		units                []int64
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &hotelID, &category, &nightlyCents, &maxOccupancy, &amenities, &images, &units, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return room.ReconstructRoomType(id, hotelID, category, nightlyCents, maxOccupancy,
		amenities, images, unitsFromDB(units), createdAt, updatedAt), nil
}

func unitsToDB(units []int) []int64 {
	out := make([]int64, len(units))
	for i, n := range units {
		out[i] = int64(n)
	}
	return out
}

func unitsFromDB(units []int64) []int {
	out := make([]int, len(units))
	for i, n := range units {
		out[i] = int(n)
	}
	return out
}
