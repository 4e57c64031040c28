package response

import (
	"stayline/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomTypeResponse struct {
	ID           uuid.UUID `json:"id"`
	HotelID      uuid.UUID `json:"hotelId"`
	Category     string    `json:"category"`
	NightlyCents int64     `json:"nightlyCents"`
	MaxOccupancy int       `json:"maxOccupancy"`
	Amenities    []string  `json:"amenities"`
	Images       []string  `json:"images"`
	Units        []int     `json:"units"`
}

type UnitListResponse struct {
	RoomTypeID uuid.UUID `json:"roomTypeId"`
	Units      []int     `json:"units"`
}

func FromRoomTypeView(v *queries.RoomTypeView) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:           v.ID,
		HotelID:      v.HotelID,
		Category:     v.Category,
		NightlyCents: v.NightlyCents,
		MaxOccupancy: v.MaxOccupancy,
		Amenities:    v.Amenities,
		Images:       v.Images,
		Units:        v.Units,
	}
}

func FromRoomTypeViews(views []queries.RoomTypeView) []*RoomTypeResponse {
	out := make([]*RoomTypeResponse, len(views))
	for i := range views {
		out[i] = FromRoomTypeView(&views[i])
	}
	return out
}
