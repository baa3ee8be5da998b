package property

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	"github.com/m04kA/SMC-InspectionService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InspectionService/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

// Repository репозиторий для работы с объектами недвижимости и агентствами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый объект недвижимости.
// Дубликат внешнего кода возвращает ErrPropertyExists.
func (r *Repository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("properties").
		Columns(
			"code",
			"client_id",
			"agency_id",
			"address",
			"area_m2",
			"furnishing",
			"base_charge",
		).
		Values(
			p.Code,
			p.ClientID,
			p.AgencyID,
			p.Address,
			p.AreaM2,
			p.Furnishing,
			p.BaseCharge,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, ErrPropertyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}

// GetByID получает объект недвижимости по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"client_id",
		"agency_id",
		"address",
		"area_m2",
		"furnishing",
		"base_charge",
	).
		From("properties").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Property
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Code,
		&p.ClientID,
		&p.AgencyID,
		&p.Address,
		&p.AreaM2,
		&p.Furnishing,
		&p.BaseCharge,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan property: %v", ErrScanRow, err)
	}

	return &p, nil
}

// GetAgency получает агентство с тарифами за квадратный метр
func (r *Repository) GetAgency(ctx context.Context, id int64) (*domain.Agency, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"rate_per_m2_unfurnished",
		"rate_per_m2_semi",
		"rate_per_m2_furnished",
	).
		From("agencies").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAgency - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Agency
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.Name,
		&a.RatePerM2Unfurnished,
		&a.RatePerM2Semi,
		&a.RatePerM2Furnished,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAgencyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAgency - scan agency: %v", ErrScanRow, err)
	}

	return &a, nil
}

// CountByClient возвращает количество объектов, привязанных к клиенту.
// Используется очисткой устаревших данных: клиент удаляется только
// после удаления всех его объектов.
func (r *Repository) CountByClient(ctx context.Context, clientID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("properties").
		Where(squirrel.Eq{"client_id": clientID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByClient - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: CountByClient - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Delete удаляет объект недвижимости
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("properties").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPropertyNotFound
	}

	return nil
}
