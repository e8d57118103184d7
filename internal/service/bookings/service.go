package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByUserID возвращает текущее бронирование пользователя вместе с комнатой
func (s *Service) GetByUserID(ctx context.Context, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByUserID: fetching booking for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByUserID: user=%d has no booking", userID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByUserID: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetByUserID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByUserID: user=%d has booking id=%d in room=%d", userID, booking.ID, booking.RoomID)
	return models.FromDomainBooking(booking), nil
}
