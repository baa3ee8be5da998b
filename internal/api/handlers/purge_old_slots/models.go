package purge_old_slots

// PurgeOldSlotsRequest тело запроса на очистку устаревших данных.
// При нулевом или отсутствующем значении используется срок хранения по умолчанию.
type PurgeOldSlotsRequest struct {
	RetentionMonths int `json:"retentionMonths,omitempty"`
}
