// Package pricing содержит чистые функции расчёта стоимости осмотров:
// выплата специалисту по тарифной сетке, стоимость для клиента и базовая
// стоимость объекта по тарифам агентства. Функции не обращаются к БД.
package pricing

import (
	"math"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
)

// Payout tiers for furnished properties
const (
	furnishedFlatSmall  = 65.00  // До 50 м²
	furnishedRateMid    = 1.25   // 50–100 м², за м²
	furnishedFlatLarge  = 125.00 // 100–140 м²
	furnishedRateXLarge = 0.90   // Свыше 140 м², за м²
)

// Payout tiers for unfurnished and semi-furnished properties
const (
	unfurnishedFlatSmall  = 50.00  // До 50 м²
	unfurnishedRateMid    = 1.00   // 50–100 м², за м²
	unfurnishedFlatLarge  = 100.00 // 100–135 м²
	unfurnishedRateXLarge = 0.75   // Свыше 135 м², за м²
)

// RoundCents округляет сумму до копеек (двух знаков)
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// InspectorPayout возвращает выплату специалисту за осмотр объекта.
// Для повторного осмотра (REVIEW) выплата вдвое меньше.
// Неизвестный уровень меблировки даёт нулевую выплату — вызывающая
// сторона обязана залогировать такой случай.
func InspectorPayout(areaM2 float64, furnishing domain.Furnishing, kind domain.InspectionKind) float64 {
	var base float64

	switch furnishing {
	case domain.FurnishingFurnished:
		switch {
		case areaM2 < 50:
			base = furnishedFlatSmall
		case areaM2 < 100:
			base = areaM2 * furnishedRateMid
		case areaM2 <= 140:
			base = furnishedFlatLarge
		default:
			base = areaM2 * furnishedRateXLarge
		}
	case domain.FurnishingUnfurnished, domain.FurnishingSemi:
		switch {
		case areaM2 < 50:
			base = unfurnishedFlatSmall
		case areaM2 < 100:
			base = areaM2 * unfurnishedRateMid
		case areaM2 <= 135:
			base = unfurnishedFlatLarge
		default:
			base = areaM2 * unfurnishedRateXLarge
		}
	default:
		return 0
	}

	if kind == domain.KindReview {
		base /= 2
	}

	return RoundCents(base)
}

// ClientCharge возвращает стоимость осмотра для клиента: базовая стоимость
// объекта, для повторного осмотра — половина.
func ClientCharge(baseCharge float64, kind domain.InspectionKind) float64 {
	if kind == domain.KindReview {
		return RoundCents(baseCharge / 2)
	}
	return RoundCents(baseCharge)
}

// BaseCharge рассчитывает базовую стоимость осмотра объекта по тарифам
// агентства: площадь, умноженная на тариф за м² для уровня меблировки.
func BaseCharge(areaM2 float64, furnishing domain.Furnishing, agency *domain.Agency) float64 {
	return RoundCents(areaM2 * agency.RateFor(furnishing))
}

// FailedVisitPayout возвращает выплату специалисту за несостоявшийся
// осмотр: доля от суммы, отнесённой на долг клиента.
func FailedVisitPayout(clientCharge float64) float64 {
	return RoundCents(clientCharge * domain.PayoutFraction)
}
