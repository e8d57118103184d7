package booking

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
)

func newRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewRepository(dbmetrics.Wrap(sqlDB, nil)), mock
}

func TestRepository_Create(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("returns booking with generated id", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (user_id,room_id) VALUES ($1,$2) RETURNING id")).
			WithArgs(int64(7), int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

		created, err := repo.Create(context.Background(), &domain.Booking{UserID: 7, RoomID: 3})

		require.NoError(t, err)
		assert.Equal(t, int64(42), created.ID)
		assert.Equal(t, now, created.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique violation to ErrBookingAlreadyExists", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery("INSERT INTO bookings").
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(context.Background(), &domain.Booking{UserID: 7, RoomID: 3})

		assert.ErrorIs(t, err, ErrBookingAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("keeps driver error for retry detection", func(t *testing.T) {
		repo, mock := newRepository(t)
		serialization := &pq.Error{Code: "40001"}

		mock.ExpectQuery("INSERT INTO bookings").WillReturnError(serialization)

		_, err := repo.Create(context.Background(), &domain.Booking{UserID: 7, RoomID: 3})

		assert.ErrorIs(t, err, ErrExecQuery)
		var pqErr *pq.Error
		require.ErrorAs(t, err, &pqErr)
		assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
	})
}

func TestRepository_GetByUserID(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	columns := []string{
		"id", "user_id", "room_id", "created_at", "updated_at",
		"id", "name", "capacity", "hotel_id", "created_at", "updated_at",
	}

	t.Run("returns booking with room", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM bookings b JOIN rooms r ON r.id = b.room_id WHERE b.user_id = $1")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(1), int64(7), int64(3), now, now, int64(3), "101", 2, int64(9), now, now))

		booking, err := repo.GetByUserID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(1), booking.ID)
		require.NotNil(t, booking.Room)
		assert.Equal(t, int64(3), booking.Room.ID)
		assert.Equal(t, "101", booking.Room.Name)
		assert.Equal(t, 2, booking.Room.Capacity)
		assert.Equal(t, int64(9), booking.Room.HotelID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows is ErrBookingNotFound", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery("FROM bookings b").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByUserID(context.Background(), 7)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "room_id", "created_at", "updated_at"}))

	_, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByRoomID(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings WHERE room_id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountByRoomID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByRoomIDs(t *testing.T) {
	t.Run("groups counts by room", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE room_id IN ($1,$2,$3) GROUP BY room_id")).
			WithArgs(int64(1), int64(2), int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"room_id", "count"}).
				AddRow(int64(1), 2).
				AddRow(int64(3), 1))

		counts, err := repo.CountByRoomIDs(context.Background(), []int64{1, 2, 3})

		require.NoError(t, err)
		assert.Equal(t, 2, counts[1])
		assert.Equal(t, 0, counts[2])
		assert.Equal(t, 1, counts[3])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty input skips query", func(t *testing.T) {
		repo, mock := newRepository(t)

		counts, err := repo.CountByRoomIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, counts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateRoom(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("moves booking", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings SET room_id = $1, updated_at = NOW() WHERE id = $2 RETURNING")).
			WithArgs(int64(5), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "room_id", "created_at", "updated_at"}).
				AddRow(int64(1), int64(7), int64(5), now, now))

		updated, err := repo.UpdateRoom(context.Background(), 1, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(1), updated.ID)
		assert.Equal(t, int64(5), updated.RoomID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing booking", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery("UPDATE bookings").WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateRoom(context.Background(), 1, 5)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
