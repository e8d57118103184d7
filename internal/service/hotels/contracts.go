package hotels

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// EnrollmentRepository интерфейс репозитория регистраций
type EnrollmentRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error)
}

// TicketRepository интерфейс репозитория билетов
type TicketRepository interface {
	GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
}

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetAll(ctx context.Context) ([]*domain.Hotel, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByHotelID(ctx context.Context, hotelID int64) ([]domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountByRoomIDs(ctx context.Context, roomIDs []int64) (map[int64]int, error)
}

// Cache интерфейс кэша (Redis)
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
