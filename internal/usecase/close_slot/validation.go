package close_slot

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Reason) == "" {
		return ErrReasonRequired
	}

	if len(req.Reason) > domain.MaxClosureReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxClosureReasonLength)
	}

	return nil
}
