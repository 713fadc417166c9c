package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/pkg/dbmetrics"
	"github.com/fideslex/booking-service/pkg/pgerr"
	"github.com/fideslex/booking-service/pkg/psqlbuilder"
)

// activeSlotIndex частичный уникальный индекс, запрещающий двойное бронирование
const activeSlotIndex = "appointments_professional_start_active_uidx"

// selectColumns колонки записи; услуги собираются в массив подзапросом
var selectColumns = []string{
	"a.id",
	"a.professional_id",
	"a.client_id",
	"a.client_name",
	"a.client_email",
	"a.start_at",
	"a.end_at",
	"a.status",
	"COALESCE((SELECT array_agg(s.service_id ORDER BY s.service_id) FROM appointment_services s WHERE s.appointment_id = a.id), '{}')",
	"a.created_at",
	"a.updated_at",
}

// Repository журнал записей (Booking Ledger)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет запись и её услуги.
// Вызывать внутри транзакции, чтобы запись и связи с услугами фиксировались вместе.
// Конкурентная вставка того же слота завершается ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"professional_id",
			"client_id",
			"client_name",
			"client_email",
			"start_at",
			"end_at",
			"status",
		).
		Values(
			a.ProfessionalID,
			a.ClientID,
			a.ClientName,
			a.ClientEmail,
			a.StartAt,
			a.EndAt,
			a.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err, activeSlotIndex) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	if len(a.ServiceIDs) == 0 {
		return a, nil
	}

	// Связи с услугами
	linkBuilder := psqlbuilder.Insert("appointment_services").
		Columns("appointment_id", "service_id").
		Suffix("ON CONFLICT DO NOTHING")
	for _, serviceID := range a.ServiceIDs {
		linkBuilder = linkBuilder.Values(a.ID, serviceID)
	}

	query, args, err = linkBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build services insert: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return nil, ErrUnknownService
		}
		return nil, fmt.Errorf("%w: Create - execute services insert: %v", ErrExecQuery, err)
	}

	return a, nil
}

// GetByID получает запись по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(selectColumns...).
		From("appointments a").
		Where(squirrel.Eq{"a.id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// FindByProfessionalAndDay возвращает записи специалиста с началом в [from, to), во всех статусах
func (r *Repository) FindByProfessionalAndDay(ctx context.Context, professionalID string, from, to time.Time) ([]*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(selectColumns...).
		From("appointments a").
		Where(squirrel.Eq{"a.professional_id": professionalID}).
		Where(squirrel.GtOrEq{"a.start_at": from}).
		Where(squirrel.Lt{"a.start_at": to}).
		OrderBy("a.start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByProfessionalAndDay - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryList(ctx, "FindByProfessionalAndDay", query, args)
}

// ListByClient возвращает записи клиента, новые первыми
func (r *Repository) ListByClient(ctx context.Context, clientID string) ([]*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(selectColumns...).
		From("appointments a").
		Where(squirrel.Eq{"a.client_id": clientID}).
		OrderBy("a.start_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryList(ctx, "ListByClient", query, args)
}

// ExistsAt проверяет наличие неотмененной записи специалиста на момент startAt.
// Проверка носит рекомендательный характер: гарантию дает уникальный индекс.
func (r *Repository) ExistsAt(ctx context.Context, professionalID string, startAt time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("appointments").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"start_at": startAt}).
		Where(squirrel.NotEq{"status": domain.AppointmentCancelled}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAt - build query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsAt - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

// UpdateStatus меняет статус записи.
// Возврат отмененной записи в работу может упереться в занятый слот: ErrSlotTaken.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerr.IsUniqueViolation(err, activeSlotIndex) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return requireAffected(result, "UpdateStatus")
}

// SetClient привязывает запись к клиентскому аккаунту
func (r *Repository) SetClient(ctx context.Context, id int64, clientID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("client_id", clientID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetClient - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetClient - execute update: %v", ErrExecQuery, err)
	}

	return requireAffected(result, "SetClient")
}

// SweepExpired переводит просроченные pending-записи клиента в finalized.
// Возвращает количество обновленных строк.
func (r *Repository) SweepExpired(ctx context.Context, clientID string, now time.Time) (int64, error) {
	return r.sweep(ctx, "SweepExpired", squirrel.And{
		squirrel.Eq{"client_id": clientID},
		squirrel.Eq{"status": domain.AppointmentPending},
		squirrel.Lt{"end_at": now},
	})
}

// SweepAllExpired то же, что SweepExpired, но по всем клиентам
func (r *Repository) SweepAllExpired(ctx context.Context, now time.Time) (int64, error) {
	return r.sweep(ctx, "SweepAllExpired", squirrel.And{
		squirrel.Eq{"status": domain.AppointmentPending},
		squirrel.Lt{"end_at": now},
	})
}

func (r *Repository) sweep(ctx context.Context, op string, where squirrel.Sqlizer) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.AppointmentFinalized).
		Set("updated_at", squirrel.Expr("now()")).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	return n, nil
}

func (r *Repository) queryList(ctx context.Context, op, query string, args []interface{}) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan appointment: %v", ErrScanRow, op, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row scanner) (*domain.Appointment, error) {
	var (
		a          domain.Appointment
		serviceIDs pq.Int64Array
	)

	err := row.Scan(
		&a.ID,
		&a.ProfessionalID,
		&a.ClientID,
		&a.ClientName,
		&a.ClientEmail,
		&a.StartAt,
		&a.EndAt,
		&a.Status,
		&serviceIDs,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.ServiceIDs = []int64(serviceIDs)
	return &a, nil
}

func requireAffected(result sql.Result, op string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if n == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
