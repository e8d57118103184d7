package bookingevents

import "time"

// Очереди событий (routing key = имя очереди в default exchange)
const (
	RoutingKeyBookingCreated = "booking.created"
	RoutingKeyBookingChanged = "booking.changed"
)

// BookingCreated публикуется после успешного бронирования комнаты
type BookingCreated struct {
	BookingID  int64     `json:"bookingId"`
	UserID     int64     `json:"userId"`
	RoomID     int64     `json:"roomId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// BookingChanged публикуется после переноса бронирования в другую комнату
type BookingChanged struct {
	BookingID      int64     `json:"bookingId"`
	UserID         int64     `json:"userId"`
	RoomID         int64     `json:"roomId"`
	PreviousRoomID int64     `json:"previousRoomId"`
	OccurredAt     time.Time `json:"occurredAt"`
}
