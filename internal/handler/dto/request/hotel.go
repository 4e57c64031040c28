package request

type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	City        string   `json:"city" binding:"required"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

type UpdateHotelRequest struct {
	Name         *string  `json:"name,omitempty"`
	City         *string  `json:"city,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Address      *string  `json:"address,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	AddImages    []string `json:"addImages,omitempty"`
	RemoveImages []string `json:"removeImages,omitempty"`
}
