package domain

import (
	"time"

	"github.com/m04kA/SMC-InspectionService/pkg/types"
)

// TemplateEntry одна запись недельного шаблона расписания:
// «специалист N работает в день недели W в время T».
// Дни недели по соглашению Go: 0 = воскресенье ... 6 = суббота.
type TemplateEntry struct {
	ID          int64
	InspectorID int64
	Weekday     time.Weekday
	Time        types.TimeString
}
