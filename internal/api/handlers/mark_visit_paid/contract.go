package mark_visit_paid

import "context"

type VisitsService interface {
	MarkPaid(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
