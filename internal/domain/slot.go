package domain

import (
	"time"

	"github.com/m04kA/SMC-InspectionService/pkg/types"
)

// SlotStatus represents the status of a schedule slot
type SlotStatus string

const (
	StatusFree         SlotStatus = "FREE"
	StatusBookedEntry  SlotStatus = "BOOKED_ENTRY"
	StatusBookedExit   SlotStatus = "BOOKED_EXIT"
	StatusBookedReview SlotStatus = "BOOKED_REVIEW"
	StatusClosed       SlotStatus = "CLOSED"
	StatusFailedVisit  SlotStatus = "FAILED_VISIT"
)

// InspectionKind represents the kind of inspection visit
type InspectionKind string

const (
	KindEntry  InspectionKind = "ENTRY"
	KindExit   InspectionKind = "EXIT"
	KindReview InspectionKind = "REVIEW"
)

// IsValid returns true if the kind is one of the known inspection kinds
func (k InspectionKind) IsValid() bool {
	return k == KindEntry || k == KindExit || k == KindReview
}

// BookedStatus возвращает статус слота, соответствующий виду осмотра
func (k InspectionKind) BookedStatus() SlotStatus {
	switch k {
	case KindEntry:
		return StatusBookedEntry
	case KindExit:
		return StatusBookedExit
	case KindReview:
		return StatusBookedReview
	default:
		return ""
	}
}

// IsBooked returns true if the status is one of the BOOKED_* states
func (s SlotStatus) IsBooked() bool {
	return s == StatusBookedEntry || s == StatusBookedExit || s == StatusBookedReview
}

// Kind возвращает вид осмотра для статуса BOOKED_*, иначе пустое значение
func (s SlotStatus) Kind() InspectionKind {
	switch s {
	case StatusBookedEntry:
		return KindEntry
	case StatusBookedExit:
		return KindExit
	case StatusBookedReview:
		return KindReview
	default:
		return ""
	}
}

// IsValid returns true if the status is one of the six known statuses
func (s SlotStatus) IsValid() bool {
	switch s {
	case StatusFree, StatusBookedEntry, StatusBookedExit, StatusBookedReview, StatusClosed, StatusFailedVisit:
		return true
	default:
		return false
	}
}

// BookedStatuses список статусов активных бронирований.
// Используется в запросах поиска парного слота и в guard-условиях переходов.
var BookedStatuses = []SlotStatus{
	StatusBookedEntry,
	StatusBookedExit,
	StatusBookedReview,
}

// Slot represents one bookable time unit of one inspector on one date.
// Инвариант: Available = true тогда и только тогда, когда Status = FREE.
// PropertyID заполнен только для статусов BOOKED_* и FAILED_VISIT.
type Slot struct {
	ID          int64
	InspectorID int64
	Date        time.Time
	Time        types.TimeString
	Available   bool
	Status      SlotStatus
	PropertyID  *int64
}

// IsFree returns true if the slot is open for booking
func (s *Slot) IsFree() bool {
	return s.Available && s.Status == StatusFree
}

// IsMorning возвращает true, если слот в утреннем периоде (до 12:00)
func (s *Slot) IsMorning() bool {
	return s.Time.Hour() < 12
}

// SamePeriod возвращает true, если оба времени в одном периоде дня
// (утро — до 12:00, день — с 12:00). Парный слот ищется только в том же периоде.
func SamePeriod(a, b types.TimeString) bool {
	return (a.Hour() < 12) == (b.Hour() < 12)
}

// SlotsFilter фильтр для выборки слотов расписания
type SlotsFilter struct {
	InspectorID   *int64     // Фильтр по выездному специалисту (опционально)
	StartDate     *time.Time // Начало периода (опционально)
	EndDate       *time.Time // Конец периода (опционально)
	OnlyAvailable bool       // Только свободные слоты (FREE)
	OnlyBooked    bool       // Только активные бронирования (BOOKED_*)
	IncludeClosed bool       // Включать закрытые слоты
	IncludeFailed bool       // Включать несостоявшиеся осмотры
}

// SlotDetails слот с денормализованными данными объекта, клиента и агентства
// для выдачи в презентационный слой.
type SlotDetails struct {
	Slot

	PropertyCode    *string
	PropertyAddress *string
	AreaM2          *float64
	Furnishing      *Furnishing

	ClientID    *int64
	ClientName  *string
	ClientEmail *string

	AgencyID   *int64
	AgencyName *string
}

// ClosedSlot закрытый слот вместе с причиной закрытия
type ClosedSlot struct {
	SlotID int64
	Date   time.Time
	Time   types.TimeString
	Reason string
}

// ClosureRecord причина ручного закрытия слота. Принадлежит ровно одному слоту.
type ClosureRecord struct {
	ID     int64
	SlotID int64
	Reason string
}

// PurgeRef ссылки на слот и связанные с ним сущности для каскадной очистки
// устаревших данных. PropertyID и ClientID пусты для слотов без привязки.
type PurgeRef struct {
	SlotID     int64
	PropertyID *int64
	ClientID   *int64
}
