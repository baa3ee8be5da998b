package cancel_booking

// Request модель запроса на отмену бронирования
type Request struct {
	SlotID   int64 // ID любого из слотов бронирования
	ClientID int64 // ID клиента, по инициативе которого снимается бронь (для журнала)
}

// Response модель ответа с освобожденными слотами
type Response struct {
	ReleasedSlotIDs []int64 // ID слотов, возвращенных в свободный статус
}
