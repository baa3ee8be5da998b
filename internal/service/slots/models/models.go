package models

import (
	"time"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
)

// Request модели

// ListSlotsRequest запрос на получение слотов расписания
type ListSlotsRequest struct {
	InspectorID   *int64     `json:"inspectorId,omitempty"`   // Фильтр по специалисту (опционально)
	StartDate     *time.Time `json:"startDate,omitempty"`     // Начало периода (опционально)
	EndDate       *time.Time `json:"endDate,omitempty"`       // Конец периода (опционально)
	OnlyAvailable bool       `json:"onlyAvailable,omitempty"` // Только свободные слоты
	OnlyBooked    bool       `json:"onlyBooked,omitempty"`    // Только активные бронирования
	IncludeClosed bool       `json:"includeClosed,omitempty"` // Включать закрытые слоты
	IncludeFailed bool       `json:"includeFailed,omitempty"` // Включать несостоявшиеся осмотры
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSlotsRequest) ToDomainFilter() domain.SlotsFilter {
	return domain.SlotsFilter{
		InspectorID:   r.InspectorID,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		OnlyAvailable: r.OnlyAvailable,
		OnlyBooked:    r.OnlyBooked,
		IncludeClosed: r.IncludeClosed,
		IncludeFailed: r.IncludeFailed,
	}
}

// AddSlotRequest запрос на ручное добавление слота вне недельного шаблона
type AddSlotRequest struct {
	InspectorID int64  `json:"inspectorId"`
	Date        string `json:"date"` // "2026-09-07"
	Time        string `json:"time"` // "09:00"
}

// Response модели

// PropertyInfo данные объекта в составе слота
type PropertyInfo struct {
	ID         int64   `json:"id"`
	Code       string  `json:"code"`
	Address    string  `json:"address"`
	AreaM2     float64 `json:"areaM2"`
	Furnishing string  `json:"furnishing"`
}

// ClientInfo данные клиента в составе слота
type ClientInfo struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AgencyInfo данные агентства в составе слота
type AgencyInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SlotResponse ответ с данными слота расписания
type SlotResponse struct {
	ID          int64         `json:"id"`
	InspectorID int64         `json:"inspectorId"`
	Date        string        `json:"date"` // "2026-09-07"
	Time        string        `json:"time"` // "09:00"
	Available   bool          `json:"available"`
	Status      string        `json:"status"`
	Property    *PropertyInfo `json:"property,omitempty"`
	Client      *ClientInfo   `json:"client,omitempty"`
	Agency      *AgencyInfo   `json:"agency,omitempty"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

// ClosedSlotResponse закрытый слот с причиной закрытия
type ClosedSlotResponse struct {
	SlotID int64  `json:"slotId"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Reason string `json:"reason"`
}

// ClosedSlotListResponse ответ со списком закрытых слотов
type ClosedSlotListResponse struct {
	Slots []ClosedSlotResponse `json:"slots"`
	Total int                  `json:"total"`
}

// FromDomainSlotDetails конвертирует domain модель в response
func FromDomainSlotDetails(d *domain.SlotDetails) SlotResponse {
	resp := SlotResponse{
		ID:          d.ID,
		InspectorID: d.InspectorID,
		Date:        d.Date.Format(domain.DateFormat),
		Time:        d.Time.String(),
		Available:   d.Available,
		Status:      string(d.Status),
	}

	if d.PropertyID != nil && d.PropertyCode != nil {
		resp.Property = &PropertyInfo{
			ID:      *d.PropertyID,
			Code:    *d.PropertyCode,
			Address: strOrEmpty(d.PropertyAddress),
		}
		if d.AreaM2 != nil {
			resp.Property.AreaM2 = *d.AreaM2
		}
		if d.Furnishing != nil {
			resp.Property.Furnishing = string(*d.Furnishing)
		}
	}

	if d.ClientID != nil {
		resp.Client = &ClientInfo{
			ID:    *d.ClientID,
			Name:  strOrEmpty(d.ClientName),
			Email: strOrEmpty(d.ClientEmail),
		}
	}

	if d.AgencyID != nil {
		resp.Agency = &AgencyInfo{
			ID:   *d.AgencyID,
			Name: strOrEmpty(d.AgencyName),
		}
	}

	return resp
}

// FromDomainSlotList конвертирует список domain моделей в response
func FromDomainSlotList(details []*domain.SlotDetails) *SlotListResponse {
	slots := make([]SlotResponse, 0, len(details))
	for _, d := range details {
		slots = append(slots, FromDomainSlotDetails(d))
	}
	return &SlotListResponse{Slots: slots, Total: len(slots)}
}

// FromDomainClosedSlots конвертирует список закрытых слотов в response
func FromDomainClosedSlots(closed []*domain.ClosedSlot) *ClosedSlotListResponse {
	slots := make([]ClosedSlotResponse, 0, len(closed))
	for _, cs := range closed {
		slots = append(slots, ClosedSlotResponse{
			SlotID: cs.SlotID,
			Date:   cs.Date.Format(domain.DateFormat),
			Time:   cs.Time.String(),
			Reason: cs.Reason,
		})
	}
	return &ClosedSlotListResponse{Slots: slots, Total: len(slots)}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
