package register_failed_visit

// RegisterFailedVisitRequest тело запроса на регистрацию несостоявшегося осмотра.
// Причина обязательна. Сумма долга опциональна: по умолчанию берется
// стоимость осмотра по тарифам.
type RegisterFailedVisitRequest struct {
	Reason       string   `json:"reason"`
	ClientCharge *float64 `json:"clientCharge,omitempty"`
}
