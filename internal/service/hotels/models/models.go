package models

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// HotelResponse отель в списке
type HotelResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomResponse комната с текущей заполненностью
type RoomResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int64     `json:"hotelId"`
	Occupancy int       `json:"occupancy"`
	Available int       `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HotelWithRoomsResponse отель со списком комнат
type HotelWithRoomsResponse struct {
	HotelResponse
	Rooms []RoomResponse `json:"Rooms"`
}

// FromDomainHotel конвертирует domain.Hotel в HotelResponse
func FromDomainHotel(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		ID:        h.ID,
		Name:      h.Name,
		Image:     h.Image,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// FromDomainHotels конвертирует список отелей
func FromDomainHotels(hotels []*domain.Hotel) []HotelResponse {
	result := make([]HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		result = append(result, FromDomainHotel(h))
	}
	return result
}

// FromRoomAvailability конвертирует domain.RoomAvailability в RoomResponse
func FromRoomAvailability(ra domain.RoomAvailability) RoomResponse {
	return RoomResponse{
		ID:        ra.ID,
		Name:      ra.Name,
		Capacity:  ra.Capacity,
		HotelID:   ra.HotelID,
		Occupancy: ra.Occupancy,
		Available: ra.Available,
		CreatedAt: ra.CreatedAt,
		UpdatedAt: ra.UpdatedAt,
	}
}
