package change_reservation

import (
	"errors"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

var (
	// ErrMissingBookingID возвращается, когда bookingId не передан
	ErrMissingBookingID = domain.NewError(domain.ErrNoVacancy, "change_reservation: booking id is required")

	// ErrNoCurrentBooking возвращается, когда у пользователя нет бронирования
	ErrNoCurrentBooking = domain.NewError(domain.ErrNoVacancy, "change_reservation: user has no booking")

	// ErrRoomNotFound возвращается, когда целевая комната не найдена
	ErrRoomNotFound = domain.NewError(domain.ErrNotFound, "change_reservation: room not found")

	// ErrRoomFull возвращается, когда в целевой комнате нет свободных мест
	ErrRoomFull = domain.NewError(domain.ErrNoVacancy, "change_reservation: room is full")

	// ErrBookingNotFound возвращается, когда бронирование с переданным bookingId не найдено
	ErrBookingNotFound = domain.NewError(domain.ErrNotFound, "change_reservation: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("change_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("change_reservation: internal error")
)
