package models

import (
	"github.com/m04kA/SMC-InspectionService/internal/domain"
)

// Request модели

// AddTemplateRequest запрос на добавление записи недельного шаблона.
// Weekday по соглашению Go: 0 = воскресенье ... 6 = суббота.
type AddTemplateRequest struct {
	InspectorID int64  `json:"inspectorId"`
	Weekday     int    `json:"weekday"`
	Time        string `json:"time"` // "09:00"
}

// Response модели

// TemplateResponse ответ с данными записи шаблона
type TemplateResponse struct {
	ID          int64  `json:"id"`
	InspectorID int64  `json:"inspectorId"`
	Weekday     int    `json:"weekday"`
	Time        string `json:"time"`
}

// TemplateListResponse ответ со списком записей шаблона
type TemplateListResponse struct {
	Entries []TemplateResponse `json:"entries"`
	Total   int                `json:"total"`
}

// FromDomainTemplate конвертирует domain модель в response
func FromDomainTemplate(entry *domain.TemplateEntry) TemplateResponse {
	return TemplateResponse{
		ID:          entry.ID,
		InspectorID: entry.InspectorID,
		Weekday:     int(entry.Weekday),
		Time:        entry.Time.String(),
	}
}

// FromDomainTemplateList конвертирует список domain моделей в response
func FromDomainTemplateList(entries []*domain.TemplateEntry) *TemplateListResponse {
	result := make([]TemplateResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, FromDomainTemplate(entry))
	}
	return &TemplateListResponse{Entries: result, Total: len(result)}
}
