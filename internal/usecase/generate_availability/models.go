package generate_availability

// Request модель запроса на генерацию расписания
type Request struct {
	HorizonWeeks int // Горизонт генерации в неделях (0 = значение по умолчанию)
}

// Response модель ответа с итогами генерации
type Response struct {
	InspectorsProcessed int // Количество обработанных специалистов
	SlotsCreated        int // Количество созданных слотов
	SlotsSkipped        int // Количество пропущенных дубликатов
}
