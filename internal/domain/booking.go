package domain

import "time"

// Booking бронирование комнаты пользователем
// У пользователя может быть не больше одного бронирования
type Booking struct {
	ID     int64
	UserID int64
	RoomID int64

	// Room заполняется, когда бронирование читается вместе с комнатой
	Room *Room

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsInRoom проверяет, относится ли бронирование к указанной комнате
func (b *Booking) IsInRoom(roomID int64) bool {
	return b.RoomID == roomID
}
