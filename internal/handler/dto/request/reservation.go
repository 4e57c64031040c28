package request

import (
	"github.com/google/uuid"
)

type BookReservationRequest struct {
	RoomTypeID uuid.UUID `json:"roomTypeId" binding:"required"`
	CheckIn    string    `json:"checkIn" binding:"required"`
	CheckOut   string    `json:"checkOut" binding:"required"`
	Adults     int       `json:"adults" binding:"required,gt=0"`
	Children   int       `json:"children" binding:"gte=0"`
}
