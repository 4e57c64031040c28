package response

import (
	"time"

	"stayline/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	GuestID       uuid.UUID `json:"guestId"`
	HotelID       uuid.UUID `json:"hotelId"`
	RoomTypeID    uuid.UUID `json:"roomTypeId"`
	Unit          int       `json:"unit"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	Nights        int       `json:"nights"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	TotalCents    int64     `json:"totalCents"`
	PaymentStatus string    `json:"paymentStatus"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            v.ID,
		GuestID:       v.GuestID,
		HotelID:       v.HotelID,
		RoomTypeID:    v.RoomTypeID,
		Unit:          v.Unit,
		CheckIn:       v.CheckIn.Format("2006-01-02"),
		CheckOut:      v.CheckOut.Format("2006-01-02"),
		Nights:        v.Nights,
		Adults:        v.Adults,
		Children:      v.Children,
		TotalCents:    v.TotalCents,
		PaymentStatus: v.PaymentStatus,
		Status:        v.Status,
		CreatedAt:     v.CreatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}
