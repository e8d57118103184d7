package reserve_room

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	return nil
}

// validateTicket проверяет, что билет дает право на бронирование отеля
func validateTicket(ticket *domain.Ticket) error {
	if ticket == nil || !ticket.AllowsHotel() {
		return ErrTicketIneligible
	}
	return nil
}

// validateVacancy проверяет, что в комнате есть свободное место
func validateVacancy(room *domain.Room, occupancy int) error {
	if !room.HasVacancy(occupancy) {
		return fmt.Errorf("%w: %d/%d places taken", ErrRoomFull, occupancy, room.Capacity)
	}
	return nil
}

// outcomeOf переводит ошибку usecase в исход для метрик
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return domain.OutcomeSuccess
	case errors.Is(err, ErrTicketIneligible):
		return domain.OutcomeTicketIneligible
	case errors.Is(err, ErrRoomFull):
		return domain.OutcomeRoomFull
	case errors.Is(err, ErrBookingAlreadyExists):
		return domain.OutcomeAlreadyBooked
	case errors.Is(err, domain.ErrNotFound):
		return domain.OutcomeNotFound
	default:
		return domain.OutcomeError
	}
}
