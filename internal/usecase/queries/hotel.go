package queries

import (
	"context"
	"log/slog"

	"stayline/internal/domain/hotel"
	"stayline/internal/domain/room"
	"stayline/internal/infra"
	"stayline/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFound    = errs.New("hotel not found")
	ErrRoomTypeNotFound = errs.New("room type not found")
)

type HotelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	List(ctx context.Context, city string) ([]*hotel.Hotel, error)
}

type RoomTypeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.RoomType, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*room.RoomType, error)
}

// RoomTypeCache is a read-side cache for per-hotel room type listings. A
// cache miss or failure falls through to the store; availability decisions
// never consult it.
type RoomTypeCache interface {
	Get(ctx context.Context, hotelID uuid.UUID) ([]RoomTypeView, bool)
	Set(ctx context.Context, hotelID uuid.UUID, views []RoomTypeView)
	Invalidate(ctx context.Context, hotelID uuid.UUID)
}

type HotelQueries interface {
	GetHotel(ctx context.Context, id uuid.UUID) (*HotelView, error)
	ListHotels(ctx context.Context, city string) ([]*HotelView, error)
	GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	ListRoomTypes(ctx context.Context, hotelID uuid.UUID) ([]RoomTypeView, error)
	ListUnits(ctx context.Context, roomTypeID uuid.UUID) ([]int, error)
}

type hotelQueriesImpl struct {
	hotels    HotelReadStore
	roomTypes RoomTypeReadStore
	cache     RoomTypeCache
}

func NewHotelQueries(hotels HotelReadStore, roomTypes RoomTypeReadStore, cache RoomTypeCache) HotelQueries {
	return &hotelQueriesImpl{
		hotels:    hotels,
		roomTypes: roomTypes,
		cache:     cache,
	}
}

func (q *hotelQueriesImpl) GetHotel(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	h, err := q.hotels.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return HotelToView(h), nil
}

func (q *hotelQueriesImpl) ListHotels(ctx context.Context, city string) ([]*HotelView, error) {
	hotels, err := q.hotels.List(ctx, city)
	if err != nil {
		return nil, err
	}

	views := make([]*HotelView, len(hotels))
	for i, h := range hotels {
		views[i] = HotelToView(h)
	}
	return views, nil
}

func (q *hotelQueriesImpl) GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error) {
	rt, err := q.roomTypes.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	return RoomTypeToView(rt), nil
}

func (q *hotelQueriesImpl) ListRoomTypes(ctx context.Context, hotelID uuid.UUID) ([]RoomTypeView, error) {
	if views, ok := q.cache.Get(ctx, hotelID); ok {
		return views, nil
	}

	types, err := q.roomTypes.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	views := make([]RoomTypeView, len(types))
	for i, rt := range types {
		views[i] = *RoomTypeToView(rt)
	}

	q.cache.Set(ctx, hotelID, views)
	slog.Debug("room type listing cached", "hotel_id", hotelID, "count", len(views))
	return views, nil
}

func (q *hotelQueriesImpl) ListUnits(ctx context.Context, roomTypeID uuid.UUID) ([]int, error) {
	rt, err := q.roomTypes.FindByID(ctx, roomTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	return rt.Units(), nil
}
