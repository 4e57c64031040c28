package commands

import (
	"context"
	"log/slog"

	"stayline/internal/domain/hotel"
	"stayline/internal/infra"
	"stayline/internal/infra/db"
	"stayline/internal/pkg/errs"
	"stayline/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidHotel = errs.New("invalid hotel attributes")

type CreateHotelRequest struct {
	Name        string
	City        string
	Description string
	Address     string
	Amenities   []string
	Images      []string
}

type UpdateHotelRequest struct {
	Name         *string
	City         *string
	Description  *string
	Address      *string
	Amenities    []string
	AddImages    []string
	RemoveImages []string
}

type HotelCommands interface {
	CreateHotel(ctx context.Context, req CreateHotelRequest, adminID uuid.UUID) (*queries.HotelView, error)
	UpdateHotel(ctx context.Context, hotelID uuid.UUID, req UpdateHotelRequest, adminID uuid.UUID) (*queries.HotelView, error)
}

type hotelCommandsImpl struct {
	hotels HotelRepository
	tx     TxRunner
}

func NewHotelCommands(hotels HotelRepository, tx TxRunner) HotelCommands {
	return &hotelCommandsImpl{hotels: hotels, tx: tx}
}

func (c *hotelCommandsImpl) CreateHotel(ctx context.Context, req CreateHotelRequest, adminID uuid.UUID) (*queries.HotelView, error) {
	h, err := hotel.NewHotel(adminID, req.Name, req.City, req.Description, req.Address, req.Amenities, req.Images)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidHotel)
	}

	persistErr := c.tx.RunInTx(ctx, func(tx db.DBTX) error {
		return c.hotels.Create(ctx, tx, h)
	})
	if persistErr != nil {
		return nil, errs.Mark(persistErr, ErrPersistenceFailure)
	}

	slog.Info("hotel created", "hotel_id", h.ID(), "admin_id", adminID)
	return queries.HotelToView(h), nil
}

func (c *hotelCommandsImpl) UpdateHotel(ctx context.Context, hotelID uuid.UUID, req UpdateHotelRequest, adminID uuid.UUID) (*queries.HotelView, error) {
	h, err := c.hotels.FindByID(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	if !h.IsManagedBy(adminID) {
		return nil, ErrNotHotelAdmin
	}

	update := hotel.Update{
		Name:         req.Name,
		City:         req.City,
		Description:  req.Description,
		Address:      req.Address,
		Amenities:    req.Amenities,
		AddImages:    req.AddImages,
		RemoveImages: req.RemoveImages,
	}
	if err := h.Apply(update); err != nil {
		return nil, errs.Mark(err, ErrInvalidHotel)
	}

	persistErr := c.tx.RunInTx(ctx, func(tx db.DBTX) error {
		return c.hotels.Update(ctx, tx, h)
	})
	if persistErr != nil {
		return nil, errs.Mark(persistErr, ErrPersistenceFailure)
	}

	return queries.HotelToView(h), nil
}
