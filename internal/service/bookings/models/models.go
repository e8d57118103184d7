package models

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// Response модели

// RoomResponse комната в ответе
type RoomResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int64     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingResponse текущее бронирование пользователя
type BookingResponse struct {
	ID   int64        `json:"id"`
	Room RoomResponse `json:"Room"`
}

// Конвертеры из domain в response

// FromDomainRoom конвертирует domain.Room в RoomResponse
func FromDomainRoom(room *domain.Room) RoomResponse {
	return RoomResponse{
		ID:        room.ID,
		Name:      room.Name,
		Capacity:  room.Capacity,
		HotelID:   room.HotelID,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
// Если комната не загружена, в ответ попадает только её ID
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	resp := &BookingResponse{ID: booking.ID}
	if booking.Room != nil {
		resp.Room = FromDomainRoom(booking.Room)
	} else {
		resp.Room = RoomResponse{ID: booking.RoomID}
	}
	return resp
}
