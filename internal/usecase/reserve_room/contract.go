package reserve_room

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/bookingevents"
)

// EnrollmentRepository интерфейс репозитория регистраций
type EnrollmentRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error)
}

// TicketRepository интерфейс репозитория билетов
type TicketRepository interface {
	GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error)
	CountByRoomID(ctx context.Context, roomID int64) (int, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// EventPublisher интерфейс издателя событий бронирования
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, event bookingevents.BookingCreated) error
}

// MetricsRecorder интерфейс для учета исходов бронирования
type MetricsRecorder interface {
	IncReservation(operation, outcome string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
