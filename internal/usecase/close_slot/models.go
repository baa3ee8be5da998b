package close_slot

// Request модель запроса на закрытие слота
type Request struct {
	SlotID  int64  // ID закрываемого слота
	ActorID int64  // ID пользователя, выполняющего закрытие
	IsAdmin bool   // Администратор может закрывать чужие слоты
	Reason  string // Причина закрытия (обязательна)
}

// Response модель ответа с результатом закрытия
type Response struct {
	SlotID    int64  // ID закрытого слота
	ClosureID int64  // ID записи о закрытии
	Status    string // Статус слота после закрытия
}
