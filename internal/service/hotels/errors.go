package hotels

import (
	"errors"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

var (
	// ErrEnrollmentNotFound возвращается, когда у пользователя нет регистрации
	ErrEnrollmentNotFound = domain.NewError(domain.ErrNotFound, "enrollment not found")

	// ErrTicketNotFound возвращается, когда у регистрации нет билета
	ErrTicketNotFound = domain.NewError(domain.ErrNotFound, "ticket not found")

	// ErrCannotListHotels возвращается, когда билет не оплачен, удаленный или без отеля
	ErrCannotListHotels = domain.NewError(domain.ErrPaymentRequired, "ticket does not allow listing hotels")

	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = domain.NewError(domain.ErrNotFound, "hotel not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
