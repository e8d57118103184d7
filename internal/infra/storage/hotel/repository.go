package hotel

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

// Repository репозиторий отелей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отелей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll возвращает все отели без комнат, упорядоченные по ID
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"image",
		"created_at",
		"updated_at",
	).
		From("hotels").
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	hotels := make([]*domain.Hotel, 0)
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan hotel: %w", ErrScanRow, err)
		}
		hotels = append(hotels, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %w", ErrScanRow, err)
	}

	return hotels, nil
}

// GetByID получает отель по ID (без комнат)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"image",
		"created_at",
		"updated_at",
	).
		From("hotels").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	h, err := scanHotel(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hotel: %w", ErrScanRow, err)
	}

	return h, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanHotel(s scanner) (*domain.Hotel, error) {
	var h domain.Hotel
	var image sql.NullString
	var createdAt, updatedAt sql.NullTime

	if err := s.Scan(&h.ID, &h.Name, &image, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	h.Image = image.String
	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time
	return &h, nil
}
