package book_slot

import (
	"github.com/m04kA/SMC-InspectionService/internal/domain"
	bookSlot "github.com/m04kA/SMC-InspectionService/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	PropertyID  int64  `json:"propertyId"`
	Kind        string `json:"kind"` // ENTRY, EXIT или REVIEW
	ForceSingle bool   `json:"forceSingle,omitempty"`
}

// BookSlotResponse HTTP response model
type BookSlotResponse struct {
	SlotID          int64  `json:"slotId"`
	CompanionSlotID *int64 `json:"companionSlotId,omitempty"`
	InspectorID     int64  `json:"inspectorId"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Status          string `json:"status"`
	ForcedSingle    bool   `json:"forcedSingle,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotRequest) ToUseCaseRequest(slotID int64) *bookSlot.Request {
	return &bookSlot.Request{
		SlotID:      slotID,
		PropertyID:  r.PropertyID,
		Kind:        domain.InspectionKind(r.Kind),
		ForceSingle: r.ForceSingle,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *BookSlotResponse {
	return &BookSlotResponse{
		SlotID:          resp.SlotID,
		CompanionSlotID: resp.CompanionSlotID,
		InspectorID:     resp.InspectorID,
		Date:            resp.Date,
		Time:            resp.Time.String(),
		Status:          resp.Status,
		ForcedSingle:    resp.ForcedSingle,
	}
}
