package reserve_room

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	enrollmentRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/enrollment"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	ticketRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/ticket"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/bookingevents"
)

// UseCase use case для бронирования комнаты
type UseCase struct {
	enrollmentRepo EnrollmentRepository
	ticketRepo     TicketRepository
	roomRepo       RoomRepository
	bookingRepo    BookingRepository
	publisher      EventPublisher
	metrics        MetricsRecorder
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	enrollmentRepo EnrollmentRepository,
	ticketRepo TicketRepository,
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	publisher EventPublisher,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
		roomRepo:       roomRepo,
		bookingRepo:    bookingRepo,
		publisher:      publisher,
		metrics:        metrics,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case бронирования комнаты
// Проверка вместимости и создание бронирования выполняются в одной сериализуемой транзакции
// с блокировкой строки комнаты, поэтому параллельные запросы не могут переполнить комнату.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() {
		uc.metrics.IncReservation(domain.OperationReserve, outcomeOf(err))
	}()

	uc.logger.Info("ReserveRoom: user=%d, room=%d", req.UserID, req.RoomID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveRoom: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем регистрацию пользователя
	enrollment, err := uc.enrollmentRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, enrollmentRepo.ErrEnrollmentNotFound) {
			uc.logger.Warn("ReserveRoom: enrollment for user=%d not found", req.UserID)
			return nil, ErrEnrollmentNotFound
		}
		uc.logger.Error("ReserveRoom: failed to get enrollment for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get enrollment: %w", ErrInternal, err)
	}

	// 3. Получаем билет и проверяем, что он дает право на отель
	ticket, err := uc.ticketRepo.GetByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, ticketRepo.ErrTicketNotFound) {
			uc.logger.Warn("ReserveRoom: ticket for enrollment=%d not found", enrollment.ID)
			return nil, ErrTicketIneligible
		}
		uc.logger.Error("ReserveRoom: failed to get ticket for enrollment=%d: %v", enrollment.ID, err)
		return nil, fmt.Errorf("%w: failed to get ticket: %w", ErrInternal, err)
	}

	if err := validateTicket(ticket); err != nil {
		uc.logger.Warn("ReserveRoom: ticket id=%d is not eligible: reason=%s", ticket.ID, ticket.IneligibilityReason())
		return nil, err
	}

	var created *domain.Booking

	// 4. Проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. У пользователя не должно быть бронирования
		existing, err := uc.bookingRepo.GetByUserID(txCtx, req.UserID)
		if err == nil {
			uc.logger.Warn("ReserveRoom: user=%d already has booking id=%d", req.UserID, existing.ID)
			return ErrBookingAlreadyExists
		}
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("ReserveRoom: failed to get current booking for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get current booking: %w", ErrInternal, err)
		}

		// 4.2. Получаем комнату с блокировкой (FOR UPDATE)
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("ReserveRoom: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("ReserveRoom: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
		}

		// 4.3. Проверяем вместимость
		occupancy, err := uc.bookingRepo.CountByRoomID(txCtx, room.ID)
		if err != nil {
			uc.logger.Error("ReserveRoom: failed to count bookings for room id=%d: %v", room.ID, err)
			return fmt.Errorf("%w: failed to count bookings: %w", ErrInternal, err)
		}

		if err := validateVacancy(room, occupancy); err != nil {
			uc.logger.Warn("ReserveRoom: room id=%d is full, %d/%d places taken", room.ID, occupancy, room.Capacity)
			return err
		}

		// 4.4. Создаем бронирование
		booking, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID: req.UserID,
			RoomID: room.ID,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingAlreadyExists) {
				uc.logger.Warn("ReserveRoom: concurrent booking for user=%d detected", req.UserID)
				return ErrBookingAlreadyExists
			}
			uc.logger.Error("ReserveRoom: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		created = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReserveRoom: successfully created booking id=%d", created.ID)

	// 5. Публикуем событие (ошибка не влияет на результат)
	event := bookingevents.BookingCreated{
		BookingID:  created.ID,
		UserID:     created.UserID,
		RoomID:     created.RoomID,
		OccurredAt: uc.timeProvider.Now().UTC(),
	}
	if err := uc.publisher.PublishBookingCreated(ctx, event); err != nil {
		uc.logger.Warn("ReserveRoom: failed to publish event for booking id=%d: %v", created.ID, err)
	}

	return &Response{BookingID: created.ID}, nil
}
