package domain

import (
	"time"

	"github.com/m04kA/SMC-InspectionService/pkg/types"
)

// NonProductiveVisit несостоявшийся осмотр: специалист выехал, но осмотр
// не проведён по вине клиента. Фиксирует сумму долга клиента и выплату
// специалисту за выезд.
type NonProductiveVisit struct {
	ID          int64
	SlotID      int64
	PropertyID  int64
	ClientID    int64
	InspectorID int64
	AgencyID    *int64 // Агентство объекта на момент регистрации (опционально)

	// Дата и время осмотра фиксируются в записи: слот может быть
	// освобождён или удалён очисткой раньше, чем запись о долге
	OriginalDate time.Time
	OriginalTime types.TimeString

	Reason       string  // Причина несостоявшегося осмотра
	ClientCharge float64 // Сумма, отнесённая на долг клиента
	PayoutAmount float64 // Выплата специалисту за выезд
	Paid         bool    // Выплачено ли специалисту
	PaidAt       *time.Time
	CreatedAt    time.Time
}

// VisitsFilter фильтр для выборки несостоявшихся осмотров
type VisitsFilter struct {
	InspectorID *int64
	ClientID    *int64
	AgencyID    *int64
	OnlyUnpaid  bool
	StartDate   *time.Time
	EndDate     *time.Time
}

// VisitDetails несостоявшийся осмотр с данными объекта, клиента и агентства
type VisitDetails struct {
	NonProductiveVisit

	PropertyCode    string
	PropertyAddress string

	ClientName  string
	ClientEmail string

	AgencyName string
}
