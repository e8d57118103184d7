package change_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Отсутствующий bookingId проверяется до любых обращений к хранилищу
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return ErrMissingBookingID
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	return nil
}

// occupancyExcludingSelf не учитывает бронирование самого пользователя,
// если он уже живет в целевой комнате
func occupancyExcludingSelf(occupancy int, current *domain.Booking, roomID int64) int {
	if current.IsInRoom(roomID) && occupancy > 0 {
		return occupancy - 1
	}
	return occupancy
}

// outcomeOf переводит ошибку usecase в исход для метрик
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return domain.OutcomeSuccess
	case errors.Is(err, ErrMissingBookingID):
		return domain.OutcomeMissingBookingID
	case errors.Is(err, ErrNoCurrentBooking):
		return domain.OutcomeNoCurrentBooking
	case errors.Is(err, ErrRoomFull):
		return domain.OutcomeRoomFull
	case errors.Is(err, domain.ErrNotFound):
		return domain.OutcomeNotFound
	default:
		return domain.OutcomeError
	}
}
