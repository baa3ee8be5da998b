package close_slot

// CloseSlotRequest тело запроса на закрытие слота
type CloseSlotRequest struct {
	Reason string `json:"reason"`
}
