package change_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/bookingevents"
)

// UseCase use case для переноса бронирования в другую комнату
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	publisher    EventPublisher
	metrics      MetricsRecorder
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	publisher EventPublisher,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		publisher:    publisher,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переносит текущее бронирование пользователя в комнату req.RoomID
// bookingId из запроса проверяется только на существование; переносится всегда
// бронирование, принадлежащее пользователю.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() {
		uc.metrics.IncReservation(domain.OperationChange, outcomeOf(err))
	}()

	uc.logger.Info("ChangeReservation: user=%d, booking=%d, room=%d", req.UserID, req.BookingID, req.RoomID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ChangeReservation: validation failed: %v", err)
		return nil, err
	}

	var current, updated *domain.Booking

	// 2. Проверка и перенос в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Текущее бронирование пользователя
		booking, err := uc.bookingRepo.GetByUserID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ChangeReservation: user=%d has no booking", req.UserID)
				return ErrNoCurrentBooking
			}
			uc.logger.Error("ChangeReservation: failed to get current booking for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get current booking: %w", ErrInternal, err)
		}
		current = booking

		// 2.2. Целевая комната с блокировкой (FOR UPDATE)
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("ChangeReservation: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("ChangeReservation: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
		}

		// 2.3. Вместимость без учета самого пользователя
		occupancy, err := uc.bookingRepo.CountByRoomID(txCtx, room.ID)
		if err != nil {
			uc.logger.Error("ChangeReservation: failed to count bookings for room id=%d: %v", room.ID, err)
			return fmt.Errorf("%w: failed to count bookings: %w", ErrInternal, err)
		}

		occupancy = occupancyExcludingSelf(occupancy, current, room.ID)
		if !room.HasVacancy(occupancy) {
			uc.logger.Warn("ChangeReservation: room id=%d is full, %d/%d places taken", room.ID, occupancy, room.Capacity)
			return fmt.Errorf("%w: %d/%d places taken", ErrRoomFull, occupancy, room.Capacity)
		}

		// 2.4. Бронирование из запроса должно существовать
		target, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ChangeReservation: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ChangeReservation: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if target.ID != current.ID {
			uc.logger.Warn("ChangeReservation: booking id=%d from path differs from user's booking id=%d, moving user's booking",
				target.ID, current.ID)
		}

		// 2.5. Переносим бронирование пользователя
		moved, err := uc.bookingRepo.UpdateRoom(txCtx, current.ID, room.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ChangeReservation: booking id=%d disappeared before update", current.ID)
				return ErrNoCurrentBooking
			}
			uc.logger.Error("ChangeReservation: failed to update booking id=%d: %v", current.ID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		if moved.ID != current.ID {
			uc.logger.Error("ChangeReservation: updated booking id=%d, expected id=%d", moved.ID, current.ID)
			return fmt.Errorf("%w: updated booking id=%d does not match id=%d", ErrInternal, moved.ID, current.ID)
		}

		updated = moved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ChangeReservation: booking id=%d moved from room=%d to room=%d", updated.ID, current.RoomID, updated.RoomID)

	// 3. Публикуем событие (ошибка не влияет на результат)
	event := bookingevents.BookingChanged{
		BookingID:      updated.ID,
		UserID:         updated.UserID,
		RoomID:         updated.RoomID,
		PreviousRoomID: current.RoomID,
		OccurredAt:     uc.timeProvider.Now().UTC(),
	}
	if err := uc.publisher.PublishBookingChanged(ctx, event); err != nil {
		uc.logger.Warn("ChangeReservation: failed to publish event for booking id=%d: %v", updated.ID, err)
	}

	return &Response{BookingID: updated.ID}, nil
}
