package cancel_booking

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/property"
	slotRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-InspectionService/pkg/types"
)

type fakeSlotRepo struct {
	slots map[int64]*domain.Slot

	// соседние занятые слоты: ключ — направление поиска
	neighbors map[bool]*domain.Slot

	releasedIDs []int64
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSlotRepo) FindBookedNeighbor(_ context.Context, inspectorID int64, date time.Time, at types.TimeString, propertyID int64, status domain.SlotStatus, forward bool) (*domain.Slot, error) {
	n, ok := f.neighbors[forward]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	if n.InspectorID != inspectorID || !n.Date.Equal(date) || n.Status != status ||
		n.PropertyID == nil || *n.PropertyID != propertyID {
		return nil, slotRepo.ErrSlotNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeSlotRepo) Release(_ context.Context, ids []int64) error {
	f.releasedIDs = ids
	return nil
}

type fakePropertyRepo struct {
	property *domain.Property
	err      error
}

func (f *fakePropertyRepo) GetByID(_ context.Context, _ int64) (*domain.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.property, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func date(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func bookedSlot(id, inspectorID int64, day string, at types.TimeString, propertyID int64, status domain.SlotStatus) *domain.Slot {
	return &domain.Slot{
		ID:          id,
		InspectorID: inspectorID,
		Date:        date(day),
		Time:        at,
		Status:      status,
		PropertyID:  &propertyID,
	}
}

func dualSlotProperty() *domain.Property {
	return &domain.Property{
		ID:         100,
		AreaM2:     120,
		Furnishing: domain.FurnishingFurnished,
	}
}

func TestExecute_ReleasesBothSlotsOfDualBooking(t *testing.T) {
	// Отменяем по первому слоту, парный найден вперед по времени
	primary := bookedSlot(1, 10, "2026-09-07", "09:00", 100, domain.StatusBookedEntry)
	companion := bookedSlot(2, 10, "2026-09-07", "10:00", 100, domain.StatusBookedEntry)

	repo := &fakeSlotRepo{
		slots:     map[int64]*domain.Slot{1: primary},
		neighbors: map[bool]*domain.Slot{true: companion},
	}

	uc := NewUseCase(repo, &fakePropertyRepo{property: dualSlotProperty()}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SlotID: 1})
	require.NoError(t, err)

	assert.ElementsMatch(t, []int64{1, 2}, resp.ReleasedSlotIDs)
	assert.ElementsMatch(t, []int64{1, 2}, repo.releasedIDs)
}

func TestExecute_ClientRecordedInLog(t *testing.T) {
	primary := bookedSlot(1, 10, "2026-09-07", "09:00", 100, domain.StatusBookedEntry)

	repo := &fakeSlotRepo{
		slots:     map[int64]*domain.Slot{1: primary},
		neighbors: map[bool]*domain.Slot{},
	}
	log := &recordingLogger{}

	uc := NewUseCase(repo, &fakePropertyRepo{property: dualSlotProperty()}, &fakeTxManager{}, log)

	_, err := uc.Execute(context.Background(), &Request{SlotID: 1, ClientID: 200})
	require.NoError(t, err)

	// Инициатор отмены фиксируется в журнале операций
	assert.Contains(t, strings.Join(log.lines, "\n"), "client=200")
}

func TestExecute_CompanionFoundBackward(t *testing.T) {
	// Отменяем по второму слоту бронирования
	second := bookedSlot(2, 10, "2026-09-07", "10:00", 100, domain.StatusBookedExit)
	first := bookedSlot(1, 10, "2026-09-07", "09:00", 100, domain.StatusBookedExit)

	repo := &fakeSlotRepo{
		slots:     map[int64]*domain.Slot{2: second},
		neighbors: map[bool]*domain.Slot{false: first},
	}

	uc := NewUseCase(repo, &fakePropertyRepo{property: dualSlotProperty()}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SlotID: 2})
	require.NoError(t, err)

	assert.ElementsMatch(t, []int64{1, 2}, resp.ReleasedSlotIDs)
}

func TestExecute_SingleSlotBooking(t *testing.T) {
	// Маленький объект: парного слота нет по правилу
	repo := &fakeSlotRepo{
		slots: map[int64]*domain.Slot{1: bookedSlot(1, 10, "2026-09-07", "09:00", 100, domain.StatusBookedEntry)},
	}
	props := &fakePropertyRepo{property: &domain.Property{
		ID:         100,
		AreaM2:     45,
		Furnishing: domain.FurnishingUnfurnished,
	}}

	uc := NewUseCase(repo, props, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SlotID: 1})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, resp.ReleasedSlotIDs)
}

func TestExecute_NeighborInOtherPeriodIgnored(t *testing.T) {
	// Сосед есть, но в другом периоде дня: это не парный слот
	primary := bookedSlot(1, 10, "2026-09-07", "11:00", 100, domain.StatusBookedEntry)
	afternoon := bookedSlot(2, 10, "2026-09-07", "14:00", 100, domain.StatusBookedEntry)

	repo := &fakeSlotRepo{
		slots:     map[int64]*domain.Slot{1: primary},
		neighbors: map[bool]*domain.Slot{true: afternoon},
	}

	uc := NewUseCase(repo, &fakePropertyRepo{property: dualSlotProperty()}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SlotID: 1})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, resp.ReleasedSlotIDs)
}

func TestExecute_PropertyAlreadyDeleted(t *testing.T) {
	repo := &fakeSlotRepo{
		slots: map[int64]*domain.Slot{1: bookedSlot(1, 10, "2026-09-07", "09:00", 100, domain.StatusBookedEntry)},
	}
	props := &fakePropertyRepo{err: propertyRepo.ErrPropertyNotFound}

	uc := NewUseCase(repo, props, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SlotID: 1})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, resp.ReleasedSlotIDs)
}

func TestExecute_SlotNotBooked(t *testing.T) {
	free := &domain.Slot{
		ID:          1,
		InspectorID: 10,
		Date:        date("2026-09-07"),
		Time:        "09:00",
		Available:   true,
		Status:      domain.StatusFree,
	}
	repo := &fakeSlotRepo{slots: map[int64]*domain.Slot{1: free}}

	uc := NewUseCase(repo, &fakePropertyRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: 1})
	require.ErrorIs(t, err, ErrSlotNotBooked)
	assert.Empty(t, repo.releasedIDs)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{slots: map[int64]*domain.Slot{}}, &fakePropertyRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: 42})
	require.ErrorIs(t, err, ErrSlotNotFound)
}
