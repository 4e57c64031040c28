package queries

import (
	"time"

	"stayline/internal/domain/hotel"
	"stayline/internal/domain/reservation"
	"stayline/internal/domain/room"

	"github.com/google/uuid"
)

type HotelView struct {
	ID          uuid.UUID `json:"id"`
	AdminID     uuid.UUID `json:"adminId"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Amenities   []string  `json:"amenities"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RoomTypeView struct {
	ID           uuid.UUID `json:"id"`
	HotelID      uuid.UUID `json:"hotelId"`
	Category     string    `json:"category"`
	NightlyCents int64     `json:"nightlyCents"`
	MaxOccupancy int       `json:"maxOccupancy"`
	Amenities    []string  `json:"amenities"`
	Images       []string  `json:"images"`
	Units        []int     `json:"units"`
}

type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	GuestID       uuid.UUID `json:"guestId"`
	HotelID       uuid.UUID `json:"hotelId"`
	RoomTypeID    uuid.UUID `json:"roomTypeId"`
	Unit          int       `json:"unit"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	Nights        int       `json:"nights"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	TotalCents    int64     `json:"totalCents"`
	PaymentStatus string    `json:"paymentStatus"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func HotelToView(h *hotel.Hotel) *HotelView {
	return &HotelView{
		ID:          h.ID(),
		AdminID:     h.AdminID(),
		Name:        h.Name(),
		City:        h.City(),
		Description: h.Description(),
		Address:     h.Address(),
		Amenities:   h.Amenities(),
		Images:      h.Images(),
		CreatedAt:   h.CreatedAt(),
		UpdatedAt:   h.UpdatedAt(),
	}
}

func RoomTypeToView(rt *room.RoomType) *RoomTypeView {
	return &RoomTypeView{
		ID:           rt.ID(),
		HotelID:      rt.HotelID(),
		Category:     rt.Category(),
		NightlyCents: rt.NightlyCents(),
		MaxOccupancy: rt.MaxOccupancy(),
		Amenities:    rt.Amenities(),
		Images:       rt.Images(),
		Units:        rt.Units(),
	}
}

func ReservationToView(res *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:            res.ID(),
		GuestID:       res.GuestID(),
		HotelID:       res.HotelID(),
		RoomTypeID:    res.RoomTypeID(),
		Unit:          res.Unit(),
		CheckIn:       res.Stay().CheckIn(),
		CheckOut:      res.Stay().CheckOut(),
		Nights:        res.Stay().Nights(),
		Adults:        res.Adults(),
		Children:      res.Children(),
		TotalCents:    res.Total().Cents(),
		PaymentStatus: res.PaymentStatus().String(),
		Status:        res.Status().String(),
		CreatedAt:     res.CreatedAt(),
	}
}
