package get_hotel

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/hotels/models"
)

type HotelService interface {
	GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*models.HotelWithRoomsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
