package reopen_slot

// Request модель запроса на повторное открытие слота
type Request struct {
	SlotID  int64 // ID открываемого слота
	ActorID int64 // ID пользователя, выполняющего открытие
	IsAdmin bool  // Администратор может открывать чужие слоты
}

// Response модель ответа с результатом открытия
type Response struct {
	SlotID int64  // ID открытого слота
	Status string // Статус слота после открытия
}
