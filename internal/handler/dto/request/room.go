package request

type CreateRoomTypeRequest struct {
	Category     string   `json:"category" binding:"required"`
	NightlyCents int64    `json:"nightlyCents" binding:"required,gt=0"`
	MaxOccupancy int      `json:"maxOccupancy" binding:"required,gt=0"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
	Units        string   `json:"units" binding:"required"`
}

// UnitsRequest carries a unit expression, e.g. "101-105,201".
type UnitsRequest struct {
	Units string `json:"units" binding:"required"`
}
