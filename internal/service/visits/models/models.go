package models

import (
	"time"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
)

// Request модели

// ListVisitsRequest запрос на получение несостоявшихся осмотров
type ListVisitsRequest struct {
	InspectorID *int64     `json:"inspectorId,omitempty"` // Фильтр по специалисту (опционально)
	ClientID    *int64     `json:"clientId,omitempty"`    // Фильтр по клиенту (опционально)
	AgencyID    *int64     `json:"agencyId,omitempty"`    // Фильтр по агентству (опционально)
	OnlyUnpaid  bool       `json:"onlyUnpaid,omitempty"`  // Только невыплаченные
	StartDate   *time.Time `json:"startDate,omitempty"`   // Начало периода (опционально)
	EndDate     *time.Time `json:"endDate,omitempty"`     // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListVisitsRequest) ToDomainFilter() domain.VisitsFilter {
	return domain.VisitsFilter{
		InspectorID: r.InspectorID,
		ClientID:    r.ClientID,
		AgencyID:    r.AgencyID,
		OnlyUnpaid:  r.OnlyUnpaid,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

// Response модели

// VisitResponse ответ с данными несостоявшегося осмотра
type VisitResponse struct {
	ID           int64   `json:"id"`
	SlotID       int64   `json:"slotId"`
	OriginalDate string  `json:"originalDate"` // "2026-09-07"
	OriginalTime string  `json:"originalTime"` // "09:00"
	Reason       string  `json:"reason"`
	InspectorID  int64   `json:"inspectorId"`
	PropertyID   int64   `json:"propertyId"`
	PropertyCode string  `json:"propertyCode"`
	Address      string  `json:"address"`
	ClientID     int64   `json:"clientId"`
	ClientName   string  `json:"clientName"`
	ClientEmail  string  `json:"clientEmail"`
	AgencyID     *int64  `json:"agencyId,omitempty"`
	AgencyName   string  `json:"agencyName,omitempty"`
	ClientCharge float64 `json:"clientCharge"`
	PayoutAmount float64 `json:"payoutAmount"`
	Paid         bool    `json:"paid"`
	PaidAt       *string `json:"paidAt,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// VisitListResponse ответ со списком несостоявшихся осмотров
type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int             `json:"total"`
}

// DebtorResponse клиент с задолженностью
type DebtorResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	DebtBalance float64 `json:"debtBalance"`
}

// DebtorListResponse ответ со списком должников
type DebtorListResponse struct {
	Debtors []DebtorResponse `json:"debtors"`
	Total   int              `json:"total"`
}

// FromDomainVisitDetails конвертирует domain модель в response
func FromDomainVisitDetails(d *domain.VisitDetails) VisitResponse {
	resp := VisitResponse{
		ID:           d.ID,
		SlotID:       d.SlotID,
		OriginalDate: d.OriginalDate.Format(domain.DateFormat),
		OriginalTime: d.OriginalTime.String(),
		Reason:       d.Reason,
		InspectorID:  d.InspectorID,
		PropertyID:   d.PropertyID,
		PropertyCode: d.PropertyCode,
		Address:      d.PropertyAddress,
		ClientID:     d.ClientID,
		ClientName:   d.ClientName,
		ClientEmail:  d.ClientEmail,
		AgencyID:     d.AgencyID,
		AgencyName:   d.AgencyName,
		ClientCharge: d.ClientCharge,
		PayoutAmount: d.PayoutAmount,
		Paid:         d.Paid,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
	}

	if d.PaidAt != nil {
		paidAt := d.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}

	return resp
}

// FromDomainVisitList конвертирует список domain моделей в response
func FromDomainVisitList(details []*domain.VisitDetails) *VisitListResponse {
	visits := make([]VisitResponse, 0, len(details))
	for _, d := range details {
		visits = append(visits, FromDomainVisitDetails(d))
	}
	return &VisitListResponse{Visits: visits, Total: len(visits)}
}

// FromDomainClients конвертирует список клиентов-должников в response
func FromDomainClients(clients []*domain.Client) *DebtorListResponse {
	debtors := make([]DebtorResponse, 0, len(clients))
	for _, c := range clients {
		debtors = append(debtors, DebtorResponse{
			ID:          c.ID,
			Name:        c.Name,
			Email:       c.Email,
			Phone:       c.Phone,
			DebtBalance: c.DebtBalance,
		})
	}
	return &DebtorListResponse{Debtors: debtors, Total: len(debtors)}
}
