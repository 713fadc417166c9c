package profile

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
)

// Repository профили пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает профиль по ID пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id", "role", "first_name", "last_name", "email", "phone", "created_at").
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Profile
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.UserID,
		&p.Role,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.Phone,
		&p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan: %v", ErrExecQuery, err)
	}

	return &p, nil
}

// Create сохраняет профиль
func (r *Repository) Create(ctx context.Context, p *domain.Profile) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("profiles").
		Columns("user_id", "role", "first_name", "last_name", "email", "phone").
		Values(p.UserID, p.Role, p.FirstName, p.LastName, p.Email, p.Phone).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pgerr.IsUniqueViolation(err, "") {
			return ErrProfileExists
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
