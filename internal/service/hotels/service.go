package hotels

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	enrollmentRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/enrollment"
	hotelRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/hotel"
	ticketRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/ticket"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/hotels/models"
)

// Ключи кэша. Заполненность комнат не кэшируется, она читается из БД на каждый запрос
const (
	cacheKeyHotelList = "hotels:list"
	cacheKeyHotel     = "hotels:%d"
)

// Service сервис для просмотра отелей
type Service struct {
	enrollmentRepo EnrollmentRepository
	ticketRepo     TicketRepository
	hotelRepo      HotelRepository
	roomRepo       RoomRepository
	bookingRepo    BookingRepository
	cache          Cache
	cacheTTL       time.Duration
	logger         Logger
}

// NewService создает новый экземпляр сервиса отелей
func NewService(
	enrollmentRepo EnrollmentRepository,
	ticketRepo TicketRepository,
	hotelRepo HotelRepository,
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	cache Cache,
	cacheTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
		hotelRepo:      hotelRepo,
		roomRepo:       roomRepo,
		bookingRepo:    bookingRepo,
		cache:          cache,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

// ListHotels возвращает список отелей
// Доступно только пользователям с оплаченным очным билетом, включающим отель
func (s *Service) ListHotels(ctx context.Context, userID int64) ([]models.HotelResponse, error) {
	s.logger.Info("ListHotels: user=%d", userID)

	// 1. Проверяем право на отель
	if err := s.checkEligibility(ctx, "ListHotels", userID); err != nil {
		return nil, err
	}

	// 2. Пытаемся взять список из кэша
	var cached []models.HotelResponse
	if s.readCache(ctx, cacheKeyHotelList, &cached) {
		s.logger.Info("ListHotels: served %d hotels from cache", len(cached))
		return cached, nil
	}

	// 3. Читаем из БД и кладем в кэш
	hotels, err := s.hotelRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListHotels: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHotels - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainHotels(hotels)
	s.writeCache(ctx, cacheKeyHotelList, resp)

	s.logger.Info("ListHotels: fetched %d hotels", len(resp))
	return resp, nil
}

// GetHotelWithRooms возвращает отель с комнатами и актуальной заполненностью
func (s *Service) GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*models.HotelWithRoomsResponse, error) {
	s.logger.Info("GetHotelWithRooms: user=%d, hotel=%d", userID, hotelID)

	if hotelID <= 0 {
		return nil, fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	// 1. Проверяем право на отель
	if err := s.checkEligibility(ctx, "GetHotelWithRooms", userID); err != nil {
		return nil, err
	}

	// 2. Отель с комнатами (кэш или БД)
	hotel, err := s.loadHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	// 3. Заполненность комнат
	roomIDs := make([]int64, 0, len(hotel.Rooms))
	for _, room := range hotel.Rooms {
		roomIDs = append(roomIDs, room.ID)
	}

	counts, err := s.bookingRepo.CountByRoomIDs(ctx, roomIDs)
	if err != nil {
		s.logger.Error("GetHotelWithRooms: failed to count bookings for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetHotelWithRooms - count bookings: %v", ErrInternal, err)
	}

	resp := &models.HotelWithRoomsResponse{
		HotelResponse: models.FromDomainHotel(hotel),
		Rooms:         make([]models.RoomResponse, 0, len(hotel.Rooms)),
	}
	for _, room := range hotel.Rooms {
		occupancy := counts[room.ID]
		resp.Rooms = append(resp.Rooms, models.FromRoomAvailability(domain.RoomAvailability{
			Room:      room,
			Occupancy: occupancy,
			Available: room.Available(occupancy),
		}))
	}

	s.logger.Info("GetHotelWithRooms: hotel=%d has %d rooms", hotelID, len(resp.Rooms))
	return resp, nil
}

// loadHotel читает отель с комнатами из кэша, при промахе из БД
func (s *Service) loadHotel(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	key := fmt.Sprintf(cacheKeyHotel, hotelID)

	var cached domain.Hotel
	if s.readCache(ctx, key, &cached) {
		return &cached, nil
	}

	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("GetHotelWithRooms: hotel id=%d not found", hotelID)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("GetHotelWithRooms: failed to get hotel id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetHotelWithRooms - get hotel: %v", ErrInternal, err)
	}

	rooms, err := s.roomRepo.GetByHotelID(ctx, hotelID)
	if err != nil {
		s.logger.Error("GetHotelWithRooms: failed to get rooms of hotel id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetHotelWithRooms - get rooms: %v", ErrInternal, err)
	}
	hotel.Rooms = rooms

	s.writeCache(ctx, key, hotel)
	return hotel, nil
}

// checkEligibility проверяет регистрацию и билет пользователя
func (s *Service) checkEligibility(ctx context.Context, op string, userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	enrollment, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, enrollmentRepo.ErrEnrollmentNotFound) {
			s.logger.Warn("%s: enrollment for user=%d not found", op, userID)
			return ErrEnrollmentNotFound
		}
		s.logger.Error("%s: failed to get enrollment for user=%d: %v", op, userID, err)
		return fmt.Errorf("%w: %s - get enrollment: %v", ErrInternal, op, err)
	}

	ticket, err := s.ticketRepo.GetByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, ticketRepo.ErrTicketNotFound) {
			s.logger.Warn("%s: ticket for enrollment=%d not found", op, enrollment.ID)
			return ErrTicketNotFound
		}
		s.logger.Error("%s: failed to get ticket for enrollment=%d: %v", op, enrollment.ID, err)
		return fmt.Errorf("%w: %s - get ticket: %v", ErrInternal, op, err)
	}

	if !ticket.AllowsHotel() {
		s.logger.Warn("%s: ticket id=%d does not allow hotels: reason=%s", op, ticket.ID, ticket.IneligibilityReason())
		return ErrCannotListHotels
	}

	return nil
}

// readCache ошибки кэша не прерывают запрос
func (s *Service) readCache(ctx context.Context, key string, dest interface{}) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn("Cache: failed to read key=%s: %v", key, err)
		return false
	}
	return found
}

func (s *Service) writeCache(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.Warn("Cache: failed to write key=%s: %v", key, err)
	}
}
