package reserve_room

import (
	reserveRoom "github.com/m04kA/SMC-HotelBookingService/internal/usecase/reserve_room"
)

// ReserveRoomRequest HTTP request model
type ReserveRoomRequest struct {
	RoomID int64 `json:"roomId" validate:"required,gt=0"`
}

// ReserveRoomResponse HTTP response model
type ReserveRoomResponse struct {
	BookingID int64 `json:"bookingId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveRoomRequest) ToUseCaseRequest(userID int64) *reserveRoom.Request {
	return &reserveRoom.Request{
		UserID: userID,
		RoomID: r.RoomID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveRoom.Response) *ReserveRoomResponse {
	return &ReserveRoomResponse{BookingID: resp.BookingID}
}
