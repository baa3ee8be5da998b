package purge_old_slots

// Request модель запроса на очистку устаревших данных
type Request struct {
	RetentionMonths int // Срок хранения в месяцах (0 = значение по умолчанию)
}

// Response модель ответа с итогами очистки
type Response struct {
	Cutoff            string // Дата отсечения ("2026-06-02")
	SlotsDeleted      int    // Количество удаленных слотов
	VisitsDeleted     int    // Количество удаленных записей о несостоявшихся осмотрах
	PropertiesDeleted int    // Количество удаленных объектов
	ClientsDeleted    int    // Количество удаленных клиентов
	UnitsFailed       int    // Количество слотов, очистка которых не удалась
}
