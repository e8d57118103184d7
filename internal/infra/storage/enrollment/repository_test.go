package enrollment

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
)

func TestRepository_GetByUserID(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	repo := NewRepository(dbmetrics.Wrap(sqlDB, nil))
	birthday := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "user_id", "name", "cpf", "birthday", "phone", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM enrollments WHERE user_id = $1")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(11), int64(7), "Ana", "12345678901", birthday, "+5511999999999", nil, nil))

		e, err := repo.GetByUserID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(11), e.ID)
		assert.Equal(t, "Ana", e.Name)
		assert.Equal(t, birthday, e.Birthday)
		assert.True(t, e.CreatedAt.IsZero())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("FROM enrollments").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByUserID(context.Background(), 8)

		assert.ErrorIs(t, err, ErrEnrollmentNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
