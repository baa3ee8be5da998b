package template

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	"github.com/m04kA/SMC-InspectionService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InspectionService/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

// Repository репозиторий для работы с недельными шаблонами расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись недельного шаблона.
// Дубликат (тот же специалист, день недели и время) возвращает ErrTemplateExists.
func (r *Repository) Create(ctx context.Context, entry *domain.TemplateEntry) (*domain.TemplateEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_templates").
		Columns("inspector_id", "weekday", "slot_time").
		Values(entry.InspectorID, int(entry.Weekday), entry.Time).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, ErrTemplateExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return entry, nil
}

// Delete удаляет запись шаблона
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_templates").
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
		return ErrTemplateNotFound
	}

	return nil
}

// ListByInspector получает записи шаблона специалиста, упорядоченные
// по дню недели и времени
func (r *Repository) ListByInspector(ctx context.Context, inspectorID int64) ([]*domain.TemplateEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "inspector_id", "weekday", "slot_time").
		From("schedule_templates").
		Where(squirrel.Eq{"inspector_id": inspectorID}).
		OrderBy("weekday ASC, slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByInspector - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByInspector - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.TemplateEntry, 0)
	for rows.Next() {
		var entry domain.TemplateEntry
		var weekday int

		if err := rows.Scan(&entry.ID, &entry.InspectorID, &weekday, &entry.Time); err != nil {
			return nil, fmt.Errorf("%w: ListByInspector - scan row: %v", ErrScanRow, err)
		}

		entry.Weekday = time.Weekday(weekday)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByInspector - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// ListInspectorIDs получает идентификаторы всех специалистов,
// у которых есть хотя бы одна запись шаблона
func (r *Repository) ListInspectorIDs(ctx context.Context) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT inspector_id").
		From("schedule_templates").
		OrderBy("inspector_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListInspectorIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInspectorIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListInspectorIDs - scan inspector_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListInspectorIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}
