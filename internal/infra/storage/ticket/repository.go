package ticket

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/psqlbuilder"
)

// Repository репозиторий билетов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория билетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEnrollmentID получает билет регистрации вместе с типом билета
func (r *Repository) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"t.id",
		"t.enrollment_id",
		"t.ticket_type_id",
		"t.status",
		"t.created_at",
		"t.updated_at",
		"tt.id",
		"tt.name",
		"tt.price",
		"tt.is_remote",
		"tt.includes_hotel",
	).
		From("tickets t").
		Join("ticket_types tt ON tt.id = t.ticket_type_id").
		Where(squirrel.Eq{"t.enrollment_id": enrollmentID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEnrollmentID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Ticket
	var status string
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.EnrollmentID,
		&t.TicketTypeID,
		&status,
		&createdAt,
		&updatedAt,
		&t.TicketType.ID,
		&t.TicketType.Name,
		&t.TicketType.Price,
		&t.TicketType.IsRemote,
		&t.TicketType.IncludesHotel,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEnrollmentID - scan ticket: %w", ErrScanRow, err)
	}

	t.Status = domain.TicketStatus(status)
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}
