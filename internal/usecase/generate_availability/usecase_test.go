package generate_availability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	"github.com/m04kA/SMC-InspectionService/pkg/types"
)

type fakeTemplateRepo struct {
	entries map[int64][]*domain.TemplateEntry
}

func (f *fakeTemplateRepo) ListInspectorIDs(_ context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(f.entries))
	for id := range f.entries {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeTemplateRepo) ListByInspector(_ context.Context, inspectorID int64) ([]*domain.TemplateEntry, error) {
	return f.entries[inspectorID], nil
}

type fakeSlotRepo struct {
	existing map[string]bool
	inserted []string
}

func slotKey(inspectorID int64, date time.Time, at types.TimeString) string {
	return fmt.Sprintf("%d/%s/%s", inspectorID, date.Format(domain.DateFormat), at)
}

func (f *fakeSlotRepo) InsertFreeIgnoreConflict(_ context.Context, inspectorID int64, date time.Time, at types.TimeString) (bool, error) {
	key := slotKey(inspectorID, date, at)
	if f.existing[key] {
		return false, nil
	}
	if f.existing == nil {
		f.existing = make(map[string]bool)
	}
	f.existing[key] = true
	f.inserted = append(f.inserted, key)
	return true, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(templates *fakeTemplateRepo, slots *fakeSlotRepo, now time.Time) *UseCase {
	uc := NewUseCase(templates, slots, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_GeneratesSlotsFromTemplate(t *testing.T) {
	// Понедельник 2026-08-31; шаблон: понедельник 09:00 и 10:00
	templates := &fakeTemplateRepo{entries: map[int64][]*domain.TemplateEntry{
		10: {
			{ID: 1, InspectorID: 10, Weekday: time.Monday, Time: "09:00"},
			{ID: 2, InspectorID: 10, Weekday: time.Monday, Time: "10:00"},
		},
	}}
	slots := &fakeSlotRepo{existing: make(map[string]bool)}

	uc := newTestUseCase(templates, slots, time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{HorizonWeeks: 1})
	require.NoError(t, err)

	// Горизонт в одну неделю включает два понедельника: сегодняшний и следующий
	assert.Equal(t, 1, resp.InspectorsProcessed)
	assert.Equal(t, 4, resp.SlotsCreated)
	assert.Equal(t, 0, resp.SlotsSkipped)

	assert.Contains(t, slots.inserted, "10/2026-08-31/09:00")
	assert.Contains(t, slots.inserted, "10/2026-09-07/10:00")
}

func TestExecute_Idempotent(t *testing.T) {
	templates := &fakeTemplateRepo{entries: map[int64][]*domain.TemplateEntry{
		10: {{ID: 1, InspectorID: 10, Weekday: time.Monday, Time: "09:00"}},
	}}
	slots := &fakeSlotRepo{existing: make(map[string]bool)}

	uc := newTestUseCase(templates, slots, time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))

	first, err := uc.Execute(context.Background(), &Request{HorizonWeeks: 2})
	require.NoError(t, err)
	require.Equal(t, 3, first.SlotsCreated)

	// Повторный запуск ничего не создает
	second, err := uc.Execute(context.Background(), &Request{HorizonWeeks: 2})
	require.NoError(t, err)
	assert.Equal(t, 0, second.SlotsCreated)
	assert.Equal(t, 3, second.SlotsSkipped)
}

func TestExecute_DefaultHorizon(t *testing.T) {
	// Шаблон по воскресеньям, старт в понедельник: при горизонте по
	// умолчанию (4 недели) попадают ровно четыре воскресенья
	templates := &fakeTemplateRepo{entries: map[int64][]*domain.TemplateEntry{
		10: {{ID: 1, InspectorID: 10, Weekday: time.Sunday, Time: "11:00"}},
	}}
	slots := &fakeSlotRepo{existing: make(map[string]bool)}

	uc := newTestUseCase(templates, slots, time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.SlotsCreated)
}

func TestExecute_NoTemplates(t *testing.T) {
	uc := newTestUseCase(&fakeTemplateRepo{entries: map[int64][]*domain.TemplateEntry{}},
		&fakeSlotRepo{}, time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{HorizonWeeks: 4})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.InspectorsProcessed)
	assert.Equal(t, 0, resp.SlotsCreated)
}

func TestExecute_NegativeHorizon(t *testing.T) {
	uc := newTestUseCase(&fakeTemplateRepo{}, &fakeSlotRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{HorizonWeeks: -1})
	require.ErrorIs(t, err, ErrInvalidInput)
}
