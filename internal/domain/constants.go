package domain

// Default configuration values
const (
	DefaultHorizonWeeks    = 4 // Горизонт генерации расписания вперёд
	DefaultRetentionMonths = 3 // Срок хранения прошедших слотов
)

// Business rule constants
const (
	// DualSlotAreaThreshold площадь, начиная с которой осмотр занимает два слота
	DualSlotAreaThreshold = 100.0

	// PayoutFraction доля от суммы клиента, начисляемая специалисту
	// за выезд, завершившийся несостоявшимся осмотром
	PayoutFraction = 0.30

	// MaxClosureReasonLength максимальная длина причины закрытия слота
	MaxClosureReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// NeedsTwoSlots возвращает true, если осмотр занимает два смежных слота.
// Правило: осмотр не является повторным и объект либо большой (площадь от
// DualSlotAreaThreshold), либо полностью меблирован.
func NeedsTwoSlots(areaM2 float64, furnishing Furnishing, kind InspectionKind) bool {
	if kind == KindReview {
		return false
	}
	return areaM2 >= DualSlotAreaThreshold || furnishing == FurnishingFurnished
}
