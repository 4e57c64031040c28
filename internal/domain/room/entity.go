package room

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCategoryRequired   = errors.New("room category is required")
	ErrInvalidNightlyRate = errors.New("nightly rate must be positive")
	ErrInvalidOccupancy   = errors.New("max occupancy must be positive")
)

// RoomType is a category of interchangeable rooms within a hotel. It owns
// the pool of physical unit numbers; every unit in the pool is unique and
// the pool is kept in ascending order.
type RoomType struct {
	id           uuid.UUID
	hotelID      uuid.UUID
	category     string
	nightlyCents int64
	maxOccupancy int
	amenities    []string
	images       []string
	units        []int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRoomType(hotelID uuid.UUID, category string, nightlyCents int64, maxOccupancy int, amenities, images []string, units []int) (*RoomType, error) {
	if strings.TrimSpace(category) == "" {
		return nil, ErrCategoryRequired
	}
	if nightlyCents <= 0 {
		return nil, ErrInvalidNightlyRate
	}
	if maxOccupancy <= 0 {
		return nil, ErrInvalidOccupancy
	}

	return &RoomType{
		id:           uuid.New(),
		hotelID:      hotelID,
		category:     category,
		nightlyCents: nightlyCents,
		maxOccupancy: maxOccupancy,
		amenities:    slices.Clone(amenities),
		images:       slices.Clone(images),
		units:        MergeUnits(nil, units),
	}, nil
}

func ReconstructRoomType(
	id, hotelID uuid.UUID,
	category string,
	nightlyCents int64,
	maxOccupancy int,
	amenities, images []string,
	units []int,
	createdAt, updatedAt time.Time,
) *RoomType {
	return &RoomType{
		id:           id,
		hotelID:      hotelID,
		category:     category,
		nightlyCents: nightlyCents,
		maxOccupancy: maxOccupancy,
		amenities:    amenities,
		images:       images,
		units:        units,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *RoomType) ID() uuid.UUID        { return r.id }
func (r *RoomType) HotelID() uuid.UUID   { return r.hotelID }
func (r *RoomType) Category() string     { return r.category }
func (r *RoomType) NightlyCents() int64  { return r.nightlyCents }
func (r *RoomType) MaxOccupancy() int    { return r.maxOccupancy }
func (r *RoomType) Amenities() []string  { return r.amenities }
func (r *RoomType) Images() []string     { return r.images }
func (r *RoomType) CreatedAt() time.Time { return r.createdAt }
func (r *RoomType) UpdatedAt() time.Time { return r.updatedAt }

// Units returns the pool in ascending order. Callers must not mutate it.
func (r *RoomType) Units() []int {
	return r.units
}

func (r *RoomType) HasUnit(unit int) bool {
	_, found := slices.BinarySearch(r.units, unit)
	return found
}

// AddUnits grows the pool; existing units are never dropped here, so
// concurrent bookings against retained units stay valid.
func (r *RoomType) AddUnits(units []int) {
	r.units = MergeUnits(r.units, units)
}

// DropUnits shrinks the pool by set difference.
func (r *RoomType) DropUnits(units []int) {
	r.units = RemoveUnits(r.units, units)
}
