package change_reservation

import (
	changeReservation "github.com/m04kA/SMC-HotelBookingService/internal/usecase/change_reservation"
)

// ChangeReservationRequest HTTP request model
type ChangeReservationRequest struct {
	RoomID int64 `json:"roomId" validate:"required,gt=0"`
}

// ChangeReservationResponse HTTP response model
type ChangeReservationResponse struct {
	BookingID int64 `json:"bookingId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ChangeReservationRequest) ToUseCaseRequest(userID, bookingID int64) *changeReservation.Request {
	return &changeReservation.Request{
		UserID:    userID,
		BookingID: bookingID,
		RoomID:    r.RoomID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *changeReservation.Response) *ChangeReservationResponse {
	return &ChangeReservationResponse{BookingID: resp.BookingID}
}
