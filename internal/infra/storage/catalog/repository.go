package catalog

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

// Repository услуги фирмы и назначенные на них специалисты (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetService получает услугу по ID
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description").
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan: %v", ErrExecQuery, err)
	}

	return &s, nil
}

// IsAssigned проверяет, что специалист назначен на услугу
func (r *Repository) IsAssigned(ctx context.Context, serviceID int64, userID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("service_assignees").
		Where(squirrel.Eq{"service_id": serviceID, "user_id": userID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsAssigned - build query: %v", ErrBuildQuery, err)
	}

	var assigned bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&assigned); err != nil {
		return false, fmt.Errorf("%w: IsAssigned - scan: %v", ErrExecQuery, err)
	}

	return assigned, nil
}
