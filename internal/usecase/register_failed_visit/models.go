package register_failed_visit

// Request модель запроса на регистрацию несостоявшегося осмотра
type Request struct {
	SlotID int64  // ID слота, по которому специалист выехал впустую
	Reason string // Причина несостоявшегося осмотра (обязательна)

	// Сумма, относимая на долг клиента. Если не указана,
	// берется стоимость осмотра по тарифам объекта.
	ClientCharge *float64
}

// Response модель ответа с результатом регистрации
type Response struct {
	VisitID      int64   // ID записи о несостоявшемся осмотре
	SlotID       int64   // ID слота
	ClientID     int64   // ID клиента-должника
	Reason       string  // Причина несостоявшегося осмотра
	ClientCharge float64 // Сумма, отнесенная на долг клиента
	PayoutAmount float64 // Выплата специалисту за выезд
}
