package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fideslex/booking-service/internal/domain"
	"github.com/fideslex/booking-service/pkg/dbmetrics"
	"github.com/fideslex/booking-service/pkg/psqlbuilder"
)

var selectColumns = []string{
	"id",
	"service_name",
	"client_id",
	"client_name",
	"client_email",
	"client_phone",
	"desired_date",
	"desired_start_min",
	"message",
	"status",
	"created_at",
	"updated_at",
}

// Repository заявки на запись
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку со статусом requested
func (r *Repository) Create(ctx context.Context, req *domain.AppointmentRequest) (*domain.AppointmentRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	req.Status = domain.RequestRequested

	query, args, err := psqlbuilder.Insert("appointment_requests").
		Columns(
			"service_name",
			"client_id",
			"client_name",
			"client_email",
			"client_phone",
			"desired_date",
			"desired_start_min",
			"message",
			"status",
		).
		Values(
			req.ServiceName,
			req.ClientID,
			req.ClientName,
			req.ClientEmail,
			req.ClientPhone,
			req.DesiredDate.Format(domain.DateFormat),
			int(req.DesiredStartMinute),
			req.Message,
			req.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// GetByID получает заявку по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AppointmentRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(selectColumns...).
		From("appointment_requests").
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return req, nil
}

// List возвращает заявки, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.RequestFilter) ([]*domain.AppointmentRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(selectColumns...).
		From("appointment_requests").
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit))
	if filter.ClientID != nil {
		builder = builder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.AppointmentRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan request: %v", ErrScanRow, err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return requests, nil
}

// MarkScheduled переводит заявку в scheduled, только если она еще открыта.
// Проигравший в гонке конверсий получает ErrAlreadyProcessed.
func (r *Repository) MarkScheduled(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointment_requests").
		Set("status", domain.RequestScheduled).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.OpenRequestStatuses}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkScheduled - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkScheduled - execute update: %v", ErrExecQuery, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkScheduled - rows affected: %v", ErrExecQuery, err)
	}
	if n == 0 {
		return ErrAlreadyProcessed
	}

	return nil
}

// SetClient привязывает заявку к клиентскому аккаунту
func (r *Repository) SetClient(ctx context.Context, id int64, clientID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointment_requests").
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

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetClient - rows affected: %v", ErrExecQuery, err)
	}
	if n == 0 {
		return ErrRequestNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row scanner) (*domain.AppointmentRequest, error) {
	var req domain.AppointmentRequest
	err := row.Scan(
		&req.ID,
		&req.ServiceName,
		&req.ClientID,
		&req.ClientName,
		&req.ClientEmail,
		&req.ClientPhone,
		&req.DesiredDate,
		&req.DesiredStartMinute,
		&req.Message,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
