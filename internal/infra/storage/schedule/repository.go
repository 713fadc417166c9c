package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/pkg/dbmetrics"
	"github.com/fideslex/booking-service/pkg/pgerr"
	"github.com/fideslex/booking-service/pkg/psqlbuilder"
	"github.com/fideslex/booking-service/pkg/timegrid"
)

const uniqueInterval = "schedules_start_end_unique"

// Repository каталог слотов расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все слоты по возрастанию начала
func (r *Repository) List(ctx context.Context) ([]*domain.ScheduleSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "start_min", "end_min", "created_at").
		From("schedules").
		OrderBy("start_min ASC", "end_min ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.ScheduleSlot, 0)
	for rows.Next() {
		var s domain.ScheduleSlot
		if err := rows.Scan(&s.ID, &s.StartMinute, &s.EndMinute, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ScheduleSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "start_min", "end_min", "created_at").
		From("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.ScheduleSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.StartMinute, &s.EndMinute, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Create добавляет слот
func (r *Repository) Create(ctx context.Context, start, end timegrid.Minute) (*domain.ScheduleSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedules").
		Columns("start_min", "end_min").
		Values(int(start), int(end)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	s := domain.ScheduleSlot{StartMinute: start, EndMinute: end}
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		if pgerr.IsUniqueViolation(err, uniqueInterval) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &s, nil
}

// Update меняет интервал слота
func (r *Repository) Update(ctx context.Context, id int64, start, end timegrid.Minute) (*domain.ScheduleSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedules").
		Set("start_min", int(start)).
		Set("end_min", int(end)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, start_min, end_min, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var s domain.ScheduleSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.StartMinute, &s.EndMinute, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		if pgerr.IsUniqueViolation(err, uniqueInterval) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return &s, nil
}

// Delete удаляет слот
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if n == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// SeedDefaults вставляет слоты, пропуская уже существующие. Возвращает число добавленных.
func (r *Repository) SeedDefaults(ctx context.Context, slots []domain.ScheduleSlot) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("schedules").
		Columns("start_min", "end_min").
		Suffix("ON CONFLICT ON CONSTRAINT " + uniqueInterval + " DO NOTHING")
	for _, s := range slots {
		builder = builder.Values(int(s.StartMinute), int(s.EndMinute))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SeedDefaults - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: SeedDefaults - execute insert: %v", ErrExecQuery, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: SeedDefaults - rows affected: %v", ErrExecQuery, err)
	}
	return n, nil
}
