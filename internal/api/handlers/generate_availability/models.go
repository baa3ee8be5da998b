package generate_availability

import (
	generateAvailability "github.com/m04kA/SMC-InspectionService/internal/usecase/generate_availability"
)

// GenerateRequest HTTP request model
type GenerateRequest struct {
	HorizonWeeks int `json:"horizonWeeks,omitempty"` // 0 = значение по умолчанию
}

// GenerateResponse HTTP response model
type GenerateResponse struct {
	InspectorsProcessed int `json:"inspectorsProcessed"`
	SlotsCreated        int `json:"slotsCreated"`
	SlotsSkipped        int `json:"slotsSkipped"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateAvailability.Response) *GenerateResponse {
	return &GenerateResponse{
		InspectorsProcessed: resp.InspectorsProcessed,
		SlotsCreated:        resp.SlotsCreated,
		SlotsSkipped:        resp.SlotsSkipped,
	}
}
