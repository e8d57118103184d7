package change_reservation

// Request модель запроса на смену комнаты
type Request struct {
	UserID    int64 // ID пользователя из токена
	BookingID int64 // ID бронирования из пути запроса
	RoomID    int64 // ID новой комнаты
}

// Response модель ответа с ID измененного бронирования
type Response struct {
	BookingID int64
}
