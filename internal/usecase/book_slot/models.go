package book_slot

import (
	"github.com/m04kA/SMC-InspectionService/internal/domain"
	"github.com/m04kA/SMC-InspectionService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	SlotID      int64                 // ID бронируемого слота
	PropertyID  int64                 // ID объекта недвижимости
	Kind        domain.InspectionKind // Вид осмотра (ENTRY, EXIT, REVIEW)
	ForceSingle bool                  // Забронировать один слот, даже если по правилу нужны два
}

// Response модель ответа с результатом бронирования
type Response struct {
	SlotID          int64            // ID основного слота
	CompanionSlotID *int64           // ID парного слота (если занято два)
	InspectorID     int64            // ID специалиста
	Date            string           // Дата осмотра ("2026-09-07")
	Time            types.TimeString // Время основного слота
	Status          string           // Статус слотов после бронирования
	ForcedSingle    bool             // Осмотру полагались два слота, но занят один
}
