package lunchbreak

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/pkg/dbmetrics"
	"github.com/fideslex/booking-service/pkg/psqlbuilder"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

// Repository обеденные перерывы специалистов, не более одного на специалиста
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает обед специалиста
func (r *Repository) Get(ctx context.Context, professionalID string) (*domain.LunchBreak, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("professional_id", "start_min", "updated_at").
		From("lunch_breaks").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var lb domain.LunchBreak
	err = executor.QueryRowContext(ctx, query, args...).Scan(&lb.ProfessionalID, &lb.StartMinute, &lb.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLunchBreakNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan: %v", ErrExecQuery, err)
	}

	return &lb, nil
}

// Upsert создает или заменяет обед специалиста
func (r *Repository) Upsert(ctx context.Context, professionalID string, start timegrid.Minute) (*domain.LunchBreak, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("lunch_breaks").
		Columns("professional_id", "start_min").
		Values(professionalID, int(start)).
		Suffix("ON CONFLICT (professional_id) DO UPDATE SET start_min = EXCLUDED.start_min, updated_at = now() RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	lb := domain.LunchBreak{ProfessionalID: professionalID, StartMinute: start}
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&lb.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return &lb, nil
}

// Delete удаляет обед специалиста. Отсутствие обеда ошибкой не считается.
func (r *Repository) Delete(ctx context.Context, professionalID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("lunch_breaks").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
