package hotels

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	enrollmentRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/enrollment"
	hotelRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/hotel"
	ticketRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/ticket"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeEnrollments map[int64]*domain.Enrollment

func (f fakeEnrollments) GetByUserID(_ context.Context, userID int64) (*domain.Enrollment, error) {
	e, ok := f[userID]
	if !ok {
		return nil, enrollmentRepo.ErrEnrollmentNotFound
	}
	return e, nil
}

type fakeTickets map[int64]*domain.Ticket

func (f fakeTickets) GetByEnrollmentID(_ context.Context, enrollmentID int64) (*domain.Ticket, error) {
	t, ok := f[enrollmentID]
	if !ok {
		return nil, ticketRepo.ErrTicketNotFound
	}
	return t, nil
}

type fakeHotels struct {
	hotels   []*domain.Hotel
	getAll   int
	getByID  int
	allError error
}

func (f *fakeHotels) GetAll(context.Context) ([]*domain.Hotel, error) {
	f.getAll++
	if f.allError != nil {
		return nil, f.allError
	}
	return f.hotels, nil
}

func (f *fakeHotels) GetByID(_ context.Context, id int64) (*domain.Hotel, error) {
	f.getByID++
	for _, h := range f.hotels {
		if h.ID == id {
			copied := *h
			return &copied, nil
		}
	}
	return nil, hotelRepo.ErrHotelNotFound
}

type fakeRooms map[int64][]domain.Room

func (f fakeRooms) GetByHotelID(_ context.Context, hotelID int64) ([]domain.Room, error) {
	return f[hotelID], nil
}

type fakeBookings map[int64]int

func (f fakeBookings) CountByRoomIDs(_ context.Context, roomIDs []int64) (map[int64]int, error) {
	counts := map[int64]int{}
	for _, id := range roomIDs {
		if n, ok := f[id]; ok {
			counts[id] = n
		}
	}
	return counts, nil
}

// memoryCache хранит значения в JSON, как это делает Redis
type memoryCache struct {
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	c.ttls[key] = ttl
	return nil
}

type fixture struct {
	hotels *fakeHotels
	cache  *memoryCache
	svc    *Service
}

// newFixture: пользователь 1 с оплаченным билетом с отелем, 2 с RESERVED, 3 с удаленным,
// 4 без билета, 5 без регистрации
func newFixture() *fixture {
	enrollments := fakeEnrollments{
		1: {ID: 11, UserID: 1},
		2: {ID: 12, UserID: 2},
		3: {ID: 13, UserID: 3},
		4: {ID: 14, UserID: 4},
	}
	tickets := fakeTickets{
		11: {ID: 1, Status: domain.TicketStatusPaid, TicketType: domain.TicketType{IncludesHotel: true}},
		12: {ID: 2, Status: domain.TicketStatusReserved, TicketType: domain.TicketType{IncludesHotel: true}},
		13: {ID: 3, Status: domain.TicketStatusPaid, TicketType: domain.TicketType{IncludesHotel: true, IsRemote: true}},
	}
	f := &fixture{
		hotels: &fakeHotels{hotels: []*domain.Hotel{
			{ID: 1, Name: "Driven Resort", Image: "https://img/1.png"},
			{ID: 2, Name: "Driven Palace"},
		}},
		cache: newMemoryCache(),
	}
	rooms := fakeRooms{
		1: {
			{ID: 101, Name: "101", Capacity: 1, HotelID: 1},
			{ID: 102, Name: "102", Capacity: 3, HotelID: 1},
		},
	}
	bookings := fakeBookings{101: 1, 102: 1}

	f.svc = NewService(enrollments, tickets, f.hotels, rooms, bookings, f.cache, time.Minute, nopLogger{})
	return f
}

func TestListHotels_Eligibility(t *testing.T) {
	tests := []struct {
		name     string
		userID   int64
		wantErr  error
		wantKind error
	}{
		{name: "reserved ticket", userID: 2, wantErr: ErrCannotListHotels, wantKind: domain.ErrPaymentRequired},
		{name: "remote ticket", userID: 3, wantErr: ErrCannotListHotels, wantKind: domain.ErrPaymentRequired},
		{name: "no ticket", userID: 4, wantErr: ErrTicketNotFound, wantKind: domain.ErrNotFound},
		{name: "no enrollment", userID: 5, wantErr: ErrEnrollmentNotFound, wantKind: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.svc.ListHotels(context.Background(), tt.userID)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Zero(t, f.hotels.getAll)
		})
	}
}

func TestListHotels_SecondCallServedFromCache(t *testing.T) {
	f := newFixture()

	first, err := f.svc.ListHotels(context.Background(), 1)
	require.NoError(t, err)
	second, err := f.svc.ListHotels(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, second, 2)
	assert.Equal(t, "Driven Resort", second[0].Name)
	assert.Equal(t, 1, f.hotels.getAll)
	assert.Equal(t, time.Minute, f.cache.ttls[cacheKeyHotelList])
}

func TestListHotels_CacheFailureFallsBackToDatabase(t *testing.T) {
	f := newFixture()
	f.cache.getErr = errors.New("redis: connection refused")

	hotels, err := f.svc.ListHotels(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, hotels, 2)
	assert.Equal(t, 1, f.hotels.getAll)
}

func TestListHotels_RepositoryError(t *testing.T) {
	f := newFixture()
	f.hotels.allError = errors.New("db down")

	_, err := f.svc.ListHotels(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetHotelWithRooms(t *testing.T) {
	t.Run("fills availability", func(t *testing.T) {
		f := newFixture()

		hotel, err := f.svc.GetHotelWithRooms(context.Background(), 1, 1)

		require.NoError(t, err)
		assert.Equal(t, "Driven Resort", hotel.Name)
		require.Len(t, hotel.Rooms, 2)
		assert.Equal(t, 1, hotel.Rooms[0].Occupancy)
		assert.Equal(t, 0, hotel.Rooms[0].Available)
		assert.Equal(t, 2, hotel.Rooms[1].Available)
	})

	t.Run("hotel structure cached, occupancy live", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.GetHotelWithRooms(context.Background(), 1, 1)
		require.NoError(t, err)
		hotel, err := f.svc.GetHotelWithRooms(context.Background(), 1, 1)
		require.NoError(t, err)

		assert.Equal(t, 1, f.hotels.getByID)
		assert.Len(t, hotel.Rooms, 2)
	})

	t.Run("hotel without rooms", func(t *testing.T) {
		f := newFixture()

		hotel, err := f.svc.GetHotelWithRooms(context.Background(), 1, 2)

		require.NoError(t, err)
		assert.NotNil(t, hotel.Rooms)
		assert.Empty(t, hotel.Rooms)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.GetHotelWithRooms(context.Background(), 1, 99)

		assert.ErrorIs(t, err, ErrHotelNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ineligible ticket", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.GetHotelWithRooms(context.Background(), 2, 1)

		assert.ErrorIs(t, err, domain.ErrPaymentRequired)
	})

	t.Run("invalid hotel id", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.GetHotelWithRooms(context.Background(), 1, 0)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
