package domain

import "time"

// Hotel отель со списком комнат
type Hotel struct {
	ID        int64
	Name      string
	Image     string
	Rooms     []Room
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Room комната отеля
type Room struct {
	ID        int64
	Name      string
	Capacity  int
	HotelID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasVacancy returns true if the room can accept one more booking
func (r *Room) HasVacancy(occupancy int) bool {
	return occupancy < r.Capacity
}

// Available возвращает количество свободных мест (не меньше нуля)
func (r *Room) Available(occupancy int) int {
	if occupancy >= r.Capacity {
		return 0
	}
	return r.Capacity - occupancy
}

// RoomAvailability комната с текущей заполненностью
type RoomAvailability struct {
	Room
	Occupancy int
	Available int
}
