package response

import (
	"time"

	"stayline/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Amenities   []string  `json:"amenities"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromHotelView(v *queries.HotelView) *HotelResponse {
	return &HotelResponse{
		ID:          v.ID,
		Name:        v.Name,
		City:        v.City,
		Description: v.Description,
		Address:     v.Address,
		Amenities:   v.Amenities,
		Images:      v.Images,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromHotelViews(views []*queries.HotelView) []*HotelResponse {
	out := make([]*HotelResponse, len(views))
	for i, v := range views {
		out[i] = FromHotelView(v)
	}
	return out
}
