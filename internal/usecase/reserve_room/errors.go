package reserve_room

import (
	"errors"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

var (
	// ErrEnrollmentNotFound возвращается, когда у пользователя нет регистрации
	ErrEnrollmentNotFound = domain.NewError(domain.ErrNotFound, "reserve_room: enrollment not found")

	// ErrTicketIneligible возвращается, когда билета нет или он не дает права на отель
	ErrTicketIneligible = domain.NewError(domain.ErrNoVacancy, "reserve_room: ticket does not allow hotel booking")

	// ErrBookingAlreadyExists возвращается, когда у пользователя уже есть бронирование
	ErrBookingAlreadyExists = domain.NewError(domain.ErrNoVacancy, "reserve_room: user already has a booking")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = domain.NewError(domain.ErrNotFound, "reserve_room: room not found")

	// ErrRoomFull возвращается, когда в комнате нет свободных мест
	ErrRoomFull = domain.NewError(domain.ErrNoVacancy, "reserve_room: room is full")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_room: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_room: internal error")
)
