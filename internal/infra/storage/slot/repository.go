package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	"github.com/m04kA/SMC-InspectionService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InspectionService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-InspectionService/pkg/types"
)

const uniqueViolationCode = "23505"

// Repository репозиторий для работы со слотами расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот расписания.
// Дубликат (тот же специалист, дата и время) возвращает ErrSlotExists.
func (r *Repository) Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns(
			"inspector_id",
			"slot_date",
			"slot_time",
			"available",
			"status",
			"property_id",
		).
		Values(
			s.InspectorID,
			s.Date,
			s.Time,
			s.Available,
			s.Status,
			s.PropertyID,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, ErrSlotExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// InsertFreeIgnoreConflict вставляет свободный слот, молча пропуская дубликаты.
// Возвращает true, если слот был создан, и false, если такой слот уже есть.
// Используется генератором расписания для идемпотентной генерации.
func (r *Repository) InsertFreeIgnoreConflict(ctx context.Context, inspectorID int64, date time.Time, slotTime types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns(
			"inspector_id",
			"slot_date",
			"slot_time",
			"available",
			"status",
		).
		Values(
			inspectorID,
			date,
			slotTime,
			true,
			domain.StatusFree,
		).
		Suffix("ON CONFLICT (inspector_id, slot_date, slot_time) DO NOTHING").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: InsertFreeIgnoreConflict - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: InsertFreeIgnoreConflict - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: InsertFreeIgnoreConflict - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// GetByID получает слот по ID.
// Внутри транзакции добавляет FOR UPDATE для блокировки строки —
// используется сценариями бронирования и отмены.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"inspector_id",
		"slot_date",
		"slot_time",
		"available",
		"status",
		"property_id",
	).
		From("slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.InspectorID,
		&s.Date,
		&s.Time,
		&s.Available,
		&s.Status,
		&s.PropertyID,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListWithFilter получает слоты с гибкой фильтрацией и данными
// объекта, клиента и агентства для забронированных слотов.
//
// Поддерживает фильтрацию по:
// - Специалисту (InspectorID) - опционально
// - Периоду (StartDate, EndDate) - опционально
// - Только свободные (OnlyAvailable) или только занятые (OnlyBooked)
// - Включению закрытых слотов и несостоявшихся осмотров
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.SlotsFilter) ([]*domain.SlotDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"s.id",
		"s.inspector_id",
		"s.slot_date",
		"s.slot_time",
		"s.available",
		"s.status",
		"s.property_id",
		"p.code",
		"p.address",
		"p.area_m2",
		"p.furnishing",
		"p.client_id",
		"c.name",
		"c.email",
		"p.agency_id",
		"a.name",
	).
		From("slots s").
		LeftJoin("properties p ON p.id = s.property_id").
		LeftJoin("clients c ON c.id = p.client_id").
		LeftJoin("agencies a ON a.id = p.agency_id")

	if filter.InspectorID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.inspector_id": *filter.InspectorID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"s.slot_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"s.slot_date": *filter.EndDate})
	}

	switch {
	case filter.OnlyAvailable:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.status": domain.StatusFree})
	case filter.OnlyBooked:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.status": bookedStatusStrings()})
	default:
		excluded := make([]string, 0, 2)
		if !filter.IncludeClosed {
			excluded = append(excluded, string(domain.StatusClosed))
		}
		if !filter.IncludeFailed {
			excluded = append(excluded, string(domain.StatusFailedVisit))
		}
		if len(excluded) > 0 {
			selectBuilder = selectBuilder.Where(squirrel.NotEq{"s.status": excluded})
		}
	}

	query, args, err := selectBuilder.
		OrderBy("s.slot_date ASC, s.slot_time ASC, s.inspector_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	details := make([]*domain.SlotDetails, 0)
	for rows.Next() {
		var d domain.SlotDetails

		err := rows.Scan(
			&d.ID,
			&d.InspectorID,
			&d.Date,
			&d.Time,
			&d.Available,
			&d.Status,
			&d.PropertyID,
			&d.PropertyCode,
			&d.PropertyAddress,
			&d.AreaM2,
			&d.Furnishing,
			&d.ClientID,
			&d.ClientName,
			&d.ClientEmail,
			&d.AgencyID,
			&d.AgencyName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}

		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}

// FindFreeLaterSameDay находит ближайший свободный слот того же специалиста
// в тот же день позже указанного времени. Используется для подбора парного
// слота при бронировании. Если подходящего слота нет, возвращает ErrSlotNotFound.
func (r *Repository) FindFreeLaterSameDay(ctx context.Context, inspectorID int64, date time.Time, after types.TimeString) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"inspector_id",
		"slot_date",
		"slot_time",
		"available",
		"status",
		"property_id",
	).
		From("slots").
		Where(squirrel.Eq{
			"inspector_id": inspectorID,
			"slot_date":    date,
			"status":       domain.StatusFree,
		}).
		Where(squirrel.Gt{"slot_time": after}).
		OrderBy("slot_time ASC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindFreeLaterSameDay - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.InspectorID,
		&s.Date,
		&s.Time,
		&s.Available,
		&s.Status,
		&s.PropertyID,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindFreeLaterSameDay - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// FindBookedNeighbor находит ближайший забронированный слот того же
// специалиста в тот же день и на тот же объект: при forward = false —
// ближайший раньше указанного времени, при forward = true — позже.
// Используется при отмене парного бронирования. Если слота нет,
// возвращает ErrSlotNotFound.
func (r *Repository) FindBookedNeighbor(ctx context.Context, inspectorID int64, date time.Time, at types.TimeString, propertyID int64, status domain.SlotStatus, forward bool) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"inspector_id",
		"slot_date",
		"slot_time",
		"available",
		"status",
		"property_id",
	).
		From("slots").
		Where(squirrel.Eq{
			"inspector_id": inspectorID,
			"slot_date":    date,
			"property_id":  propertyID,
			"status":       status,
		}).
		Limit(1)

	if forward {
		selectBuilder = selectBuilder.
			Where(squirrel.Gt{"slot_time": at}).
			OrderBy("slot_time ASC")
	} else {
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"slot_time": at}).
			OrderBy("slot_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindBookedNeighbor - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.InspectorID,
		&s.Date,
		&s.Time,
		&s.Available,
		&s.Status,
		&s.PropertyID,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindBookedNeighbor - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// MarkBooked переводит свободные слоты в забронированный статус с привязкой
// к объекту. Обновляются только слоты в статусе FREE: если хотя бы один из
// переданных слотов уже занят, возвращается ErrSlotStateConflict и ни один
// слот не меняется (метод вызывается внутри транзакции).
func (r *Repository) MarkBooked(ctx context.Context, ids []int64, propertyID int64, status domain.SlotStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("available", false).
		Set("status", status).
		Set("property_id", propertyID).
		Where(squirrel.Eq{
			"id":     ids,
			"status": domain.StatusFree,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected != int64(len(ids)) {
		return ErrSlotStateConflict
	}

	return nil
}

// Release возвращает слоты в свободный статус и снимает привязку к объекту
func (r *Repository) Release(ctx context.Context, ids []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("available", true).
		Set("status", domain.StatusFree).
		Set("property_id", nil).
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected != int64(len(ids)) {
		return ErrSlotNotFound
	}

	return nil
}

// Close переводит свободный слот в статус CLOSED.
// Слот не в статусе FREE возвращает ErrSlotStateConflict.
func (r *Repository) Close(ctx context.Context, id int64) error {
	return r.transition(ctx, "Close", id, []domain.SlotStatus{domain.StatusFree}, domain.StatusClosed)
}

// Reopen возвращает закрытый слот в статус FREE.
// Слот не в статусе CLOSED возвращает ErrSlotStateConflict.
func (r *Repository) Reopen(ctx context.Context, id int64) error {
	return r.transition(ctx, "Reopen", id, []domain.SlotStatus{domain.StatusClosed}, domain.StatusFree)
}

// MarkFailedVisit переводит забронированный слот в статус FAILED_VISIT.
// Слот не в статусе BOOKED_* возвращает ErrSlotStateConflict.
// Привязка к объекту сохраняется для истории.
func (r *Repository) MarkFailedVisit(ctx context.Context, id int64) error {
	return r.transition(ctx, "MarkFailedVisit", id, domain.BookedStatuses, domain.StatusFailedVisit)
}

// transition переводит слот из одного из допустимых статусов в целевой.
// Ноль обновлённых строк означает либо отсутствие слота, либо недопустимый
// текущий статус — различаем дополнительным SELECT.
func (r *Repository) transition(ctx context.Context, op string, id int64, from []domain.SlotStatus, to domain.SlotStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	fromStrings := make([]string, len(from))
	for i, s := range from {
		fromStrings[i] = string(s)
	}

	updateBuilder := psqlbuilder.Update("slots").
		Set("status", to).
		Set("available", to == domain.StatusFree).
		Where(squirrel.Eq{
			"id":     id,
			"status": fromStrings,
		})

	if to == domain.StatusFree {
		updateBuilder = updateBuilder.Set("property_id", nil)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrSlotStateConflict
	}

	return nil
}

// CreateClosure сохраняет причину ручного закрытия слота
func (r *Repository) CreateClosure(ctx context.Context, slotID int64, reason string) (*domain.ClosureRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slot_closures").
		Columns("slot_id", "reason").
		Values(slotID, reason).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateClosure - build insert query: %v", ErrBuildQuery, err)
	}

	record := domain.ClosureRecord{SlotID: slotID, Reason: reason}
	err = executor.QueryRowContext(ctx, query, args...).Scan(&record.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateClosure - execute insert: %v", ErrExecQuery, err)
	}

	return &record, nil
}

// DeleteClosureBySlot удаляет запись о закрытии слота
func (r *Repository) DeleteClosureBySlot(ctx context.Context, slotID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_closures").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteClosureBySlot - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteClosureBySlot - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteClosureBySlot - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClosureNotFound
	}

	return nil
}

// ListClosedByInspector получает закрытые слоты специалиста с причинами закрытия
func (r *Repository) ListClosedByInspector(ctx context.Context, inspectorID int64) ([]*domain.ClosedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.slot_date",
		"s.slot_time",
		"sc.reason",
	).
		From("slots s").
		Join("slot_closures sc ON sc.slot_id = s.id").
		Where(squirrel.Eq{
			"s.inspector_id": inspectorID,
			"s.status":       domain.StatusClosed,
		}).
		OrderBy("s.slot_date ASC, s.slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListClosedByInspector - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListClosedByInspector - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	closed := make([]*domain.ClosedSlot, 0)
	for rows.Next() {
		var cs domain.ClosedSlot
		if err := rows.Scan(&cs.SlotID, &cs.Date, &cs.Time, &cs.Reason); err != nil {
			return nil, fmt.Errorf("%w: ListClosedByInspector - scan row: %v", ErrScanRow, err)
		}
		closed = append(closed, &cs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListClosedByInspector - rows error: %v", ErrScanRow, err)
	}

	return closed, nil
}

// ListOlderThan получает слоты с датой раньше указанной вместе со ссылками
// на привязанные объекты и клиентов. Используется плановой очисткой
// устаревших данных.
func (r *Repository) ListOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.PurgeRef, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.property_id",
		"p.client_id",
	).
		From("slots s").
		LeftJoin("properties p ON p.id = s.property_id").
		Where(squirrel.Lt{"s.slot_date": cutoff}).
		OrderBy("s.slot_date ASC, s.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOlderThan - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOlderThan - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	refs := make([]*domain.PurgeRef, 0)
	for rows.Next() {
		var ref domain.PurgeRef
		if err := rows.Scan(&ref.SlotID, &ref.PropertyID, &ref.ClientID); err != nil {
			return nil, fmt.Errorf("%w: ListOlderThan - scan row: %v", ErrScanRow, err)
		}
		refs = append(refs, &ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOlderThan - rows error: %v", ErrScanRow, err)
	}

	return refs, nil
}

// Delete удаляет слот (физическое удаление, использовать осторожно).
// Запись о закрытии слота удаляется каскадно на уровне схемы.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
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
		return ErrSlotNotFound
	}

	return nil
}

// bookedStatusStrings статусы активных бронирований в строковом виде для squirrel.Eq
func bookedStatusStrings() []string {
	strs := make([]string, len(domain.BookedStatuses))
	for i, s := range domain.BookedStatuses {
		strs[i] = string(s)
	}
	return strs
}
