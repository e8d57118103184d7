package ticket

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
)

func TestRepository_GetByEnrollmentID(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	repo := NewRepository(dbmetrics.Wrap(sqlDB, nil))
	columns := []string{
		"id", "enrollment_id", "ticket_type_id", "status", "created_at", "updated_at",
		"id", "name", "price", "is_remote", "includes_hotel",
	}

	t.Run("joins ticket type", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM tickets t JOIN ticket_types tt ON tt.id = t.ticket_type_id WHERE t.enrollment_id = $1")).
			WithArgs(int64(11)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(5), int64(11), int64(2), "PAID", nil, nil, int64(2), "Presencial + Hotel", int64(60000), false, true))

		ticket, err := repo.GetByEnrollmentID(context.Background(), 11)

		require.NoError(t, err)
		assert.Equal(t, domain.TicketStatusPaid, ticket.Status)
		assert.True(t, ticket.TicketType.IncludesHotel)
		assert.False(t, ticket.TicketType.IsRemote)
		assert.True(t, ticket.AllowsHotel())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("FROM tickets t").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEnrollmentID(context.Background(), 12)

		assert.ErrorIs(t, err, ErrTicketNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		mock.ExpectQuery("FROM tickets t").WillReturnError(errors.New("connection reset"))

		_, err := repo.GetByEnrollmentID(context.Background(), 13)

		assert.ErrorIs(t, err, ErrScanRow)
		assert.NotErrorIs(t, err, ErrTicketNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
