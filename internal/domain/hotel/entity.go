package hotel

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired = errors.New("hotel name is required")
	ErrCityRequired = errors.New("hotel city is required")
)

type Hotel struct {
	id          uuid.UUID
	adminID     uuid.UUID
	name        string
	city        string
	description string
	address     string
	amenities   []string
	images      []string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewHotel(adminID uuid.UUID, name, city, description, address string, amenities, images []string) (*Hotel, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(city) == "" {
		return nil, ErrCityRequired
	}

	return &Hotel{
		id:          uuid.New(),
		adminID:     adminID,
		name:        name,
		city:        city,
		description: description,
		address:     address,
		amenities:   slices.Clone(amenities),
		images:      slices.Clone(images),
	}, nil
}

func ReconstructHotel(
	id, adminID uuid.UUID,
	name, city, description, address string,
	amenities, images []string,
	createdAt, updatedAt time.Time,
) *Hotel {
	return &Hotel{
		id:          id,
		adminID:     adminID,
		name:        name,
		city:        city,
		description: description,
		address:     address,
		amenities:   amenities,
		images:      images,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) AdminID() uuid.UUID   { return h.adminID }
func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) City() string         { return h.city }
func (h *Hotel) Description() string  { return h.description }
func (h *Hotel) Address() string      { return h.address }
func (h *Hotel) Amenities() []string  { return h.amenities }
func (h *Hotel) Images() []string     { return h.images }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }

func (h *Hotel) IsManagedBy(userID uuid.UUID) bool {
	return h.adminID == userID
}

type Update struct {
	Name         *string
	City         *string
	Description  *string
	Address      *string
	Amenities    []string
	AddImages    []string
	RemoveImages []string
}

// Apply mutates hotel metadata in place. Empty fields are left untouched so
// callers can send partial updates.
func (h *Hotel) Apply(u Update) error {
	if u.Name != nil {
		if strings.TrimSpace(*u.Name) == "" {
			return ErrNameRequired
		}
		h.name = *u.Name
	}
	if u.City != nil {
		if strings.TrimSpace(*u.City) == "" {
			return ErrCityRequired
		}
		h.city = *u.City
	}
	if u.Description != nil {
		h.description = *u.Description
	}
	if u.Address != nil {
		h.address = *u.Address
	}
	if u.Amenities != nil {
		h.amenities = slices.Clone(u.Amenities)
	}
	if len(u.AddImages) > 0 {
		h.images = append(h.images, u.AddImages...)
	}
	if len(u.RemoveImages) > 0 {
		h.images = slices.DeleteFunc(h.images, func(img string) bool {
			return slices.Contains(u.RemoveImages, img)
		})
	}
	return nil
}
