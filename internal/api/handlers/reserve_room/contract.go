package reserve_room

import (
	"context"

	reserveRoom "github.com/m04kA/SMC-HotelBookingService/internal/usecase/reserve_room"
)

type ReserveRoomUseCase interface {
	Execute(ctx context.Context, req *reserveRoom.Request) (*reserveRoom.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
