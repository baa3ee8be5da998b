package npvisit

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

// Repository репозиторий для работы с несостоявшимися осмотрами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория несостоявшихся осмотров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует несостоявшийся осмотр.
// Повторная регистрация по тому же слоту возвращает ErrVisitExists.
func (r *Repository) Create(ctx context.Context, v *domain.NonProductiveVisit) (*domain.NonProductiveVisit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("non_productive_visits").
		Columns(
			"slot_id",
			"property_id",
			"client_id",
			"inspector_id",
			"agency_id",
			"original_date",
			"original_time",
			"reason",
			"client_charge",
			"payout_amount",
			"paid",
		).
		Values(
			v.SlotID,
			v.PropertyID,
			v.ClientID,
			v.InspectorID,
			v.AgencyID,
			v.OriginalDate,
			v.OriginalTime,
			v.Reason,
			v.ClientCharge,
			v.PayoutAmount,
			v.Paid,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&v.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, ErrVisitExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time

	return v, nil
}

// GetByID получает запись о несостоявшемся осмотре по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.NonProductiveVisit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_id",
		"property_id",
		"client_id",
		"inspector_id",
		"agency_id",
		"original_date",
		"original_time",
		"reason",
		"client_charge",
		"payout_amount",
		"paid",
		"paid_at",
		"created_at",
	).
		From("non_productive_visits").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.NonProductiveVisit
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.SlotID,
		&v.PropertyID,
		&v.ClientID,
		&v.InspectorID,
		&v.AgencyID,
		&v.OriginalDate,
		&v.OriginalTime,
		&v.Reason,
		&v.ClientCharge,
		&v.PayoutAmount,
		&v.Paid,
		&v.PaidAt,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan visit: %v", ErrScanRow, err)
	}

	v.CreatedAt = createdAt.Time

	return &v, nil
}

// ListWithFilter получает несостоявшиеся осмотры с данными объекта,
// клиента и агентства. Дата и время осмотра берутся из самой записи,
// поэтому выборка не зависит от статуса слота.
//
// Поддерживает фильтрацию по:
// - Специалисту (InspectorID) - опционально
// - Клиенту (ClientID) и агентству (AgencyID) - опционально
// - Только невыплаченные (OnlyUnpaid)
// - Периоду по дате осмотра (StartDate, EndDate) - опционально
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.VisitsFilter) ([]*domain.VisitDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"v.id",
		"v.slot_id",
		"v.property_id",
		"v.client_id",
		"v.inspector_id",
		"v.agency_id",
		"v.original_date",
		"v.original_time",
		"v.reason",
		"v.client_charge",
		"v.payout_amount",
		"v.paid",
		"v.paid_at",
		"v.created_at",
		"p.code",
		"p.address",
		"c.name",
		"c.email",
		"a.name",
	).
		From("non_productive_visits v").
		Join("properties p ON p.id = v.property_id").
		Join("clients c ON c.id = v.client_id").
		LeftJoin("agencies a ON a.id = v.agency_id")

	if filter.InspectorID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"v.inspector_id": *filter.InspectorID})
	}
	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"v.client_id": *filter.ClientID})
	}
	if filter.AgencyID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"v.agency_id": *filter.AgencyID})
	}
	if filter.OnlyUnpaid {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"v.paid": false})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"v.original_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"v.original_date": *filter.EndDate})
	}

	query, args, err := selectBuilder.
		OrderBy("v.original_date DESC, v.original_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	details := make([]*domain.VisitDetails, 0)
	for rows.Next() {
		var d domain.VisitDetails
		var createdAt sql.NullTime
		var agencyName sql.NullString

		err := rows.Scan(
			&d.ID,
			&d.SlotID,
			&d.PropertyID,
			&d.ClientID,
			&d.InspectorID,
			&d.AgencyID,
			&d.OriginalDate,
			&d.OriginalTime,
			&d.Reason,
			&d.ClientCharge,
			&d.PayoutAmount,
			&d.Paid,
			&d.PaidAt,
			&createdAt,
			&d.PropertyCode,
			&d.PropertyAddress,
			&d.ClientName,
			&d.ClientEmail,
			&agencyName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}

		d.CreatedAt = createdAt.Time
		d.AgencyName = agencyName.String
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}

// MarkPaid отмечает выплату специалисту по несостоявшемуся осмотру.
// Обновляются только невыплаченные записи: повторная отметка возвращает
// ErrAlreadyPaid.
func (r *Repository) MarkPaid(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("non_productive_visits").
		Set("paid", true).
		Set("paid_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":   id,
			"paid": false,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrAlreadyPaid
	}

	return nil
}

// ExistsBySlot проверяет, зарегистрирован ли несостоявшийся осмотр по слоту
func (r *Repository) ExistsBySlot(ctx context.Context, slotID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("non_productive_visits").
		Where(squirrel.Eq{"slot_id": slotID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsBySlot - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsBySlot - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// DeleteBySlot удаляет записи о несостоявшихся осмотрах по слоту.
// Возвращает количество удалённых записей. Используется очисткой
// устаревших данных перед удалением слота.
func (r *Repository) DeleteBySlot(ctx context.Context, slotID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("non_productive_visits").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBySlot - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBySlot - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBySlot - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
