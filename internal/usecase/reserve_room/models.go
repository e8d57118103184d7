package reserve_room

// Request модель запроса на бронирование комнаты
type Request struct {
	UserID int64 // ID пользователя из токена
	RoomID int64 // ID комнаты
}

// Response модель ответа с ID созданного бронирования
type Response struct {
	BookingID int64
}
