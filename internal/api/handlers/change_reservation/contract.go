package change_reservation

import (
	"context"

	changeReservation "github.com/m04kA/SMC-HotelBookingService/internal/usecase/change_reservation"
)

type ChangeReservationUseCase interface {
	Execute(ctx context.Context, req *changeReservation.Request) (*changeReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
