package book_slot

import (
	"context"
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

	// отсортированные по времени свободные слоты для FindFreeLaterSameDay
	freeLater []*domain.Slot

	bookedIDs      []int64
	bookedProperty int64
	bookedStatus   domain.SlotStatus
	markBookedErr  error
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSlotRepo) FindFreeLaterSameDay(_ context.Context, inspectorID int64, date time.Time, after types.TimeString) (*domain.Slot, error) {
	for _, s := range f.freeLater {
		if s.InspectorID == inspectorID && s.Date.Equal(date) && s.Time > after && s.IsFree() {
			cp := *s
			return &cp, nil
		}
	}
	return nil, slotRepo.ErrSlotNotFound
}

func (f *fakeSlotRepo) MarkBooked(_ context.Context, ids []int64, propertyID int64, status domain.SlotStatus) error {
	if f.markBookedErr != nil {
		return f.markBookedErr
	}
	f.bookedIDs = ids
	f.bookedProperty = propertyID
	f.bookedStatus = status
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

func date(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func freeSlot(id, inspectorID int64, day string, at types.TimeString) *domain.Slot {
	return &domain.Slot{
		ID:          id,
		InspectorID: inspectorID,
		Date:        date(day),
		Time:        at,
		Available:   true,
		Status:      domain.StatusFree,
	}
}

func TestExecute_DualSlotBooking(t *testing.T) {
	primary := freeSlot(1, 10, "2026-09-07", "09:00")
	companion := freeSlot(2, 10, "2026-09-07", "10:00")

	repo := &fakeSlotRepo{
		slots:     map[int64]*domain.Slot{1: primary},
		freeLater: []*domain.Slot{companion},
	}
	props := &fakePropertyRepo{property: &domain.Property{
		ID:         100,
		AreaM2:     120,
		Furnishing: domain.FurnishingFurnished,
	}}

	uc := NewUseCase(repo, props, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:     1,
		PropertyID: 100,
		Kind:       domain.KindEntry,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CompanionSlotID)
	assert.Equal(t, int64(1), resp.SlotID)
	assert.Equal(t, int64(2), *resp.CompanionSlotID)
	assert.Equal(t, string(domain.StatusBookedEntry), resp.Status)
	assert.False(t, resp.ForcedSingle)

	assert.Equal(t, []int64{1, 2}, repo.bookedIDs)
	assert.Equal(t, int64(100), repo.bookedProperty)
	assert.Equal(t, domain.StatusBookedEntry, repo.bookedStatus)
}

func TestExecute_SingleSlotForSmallProperty(t *testing.T) {
	repo := &fakeSlotRepo{
		slots: map[int64]*domain.Slot{1: freeSlot(1, 10, "2026-09-07", "09:00")},
	}
	props := &fakePropertyRepo{property: &domain.Property{
		ID:         100,
		AreaM2:     45,
		Furnishing: domain.FurnishingUnfurnished,
	}}

	uc := NewUseCase(repo, props, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:     1,
		PropertyID: 100,
		Kind:       domain.KindExit,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.CompanionSlotID)
	assert.Equal(t, []int64{1}, repo.bookedIDs)
	assert.Equal(t, domain.StatusBookedExit, repo.bookedStatus)
}

func TestExecute_ReviewNeverTakesTwoSlots(t *testing.T) {
	repo := &fakeSlotRepo{
		slots: map[int64]*domain.Slot{1: freeSlot(1, 10, "2026-09-07", "09:00")},
	}
	props := &fakePropertyRepo{property: &domain.Property{
		ID:         100,
		AreaM2:     200,
		Furnishing: domain.FurnishingFurnished,
	}}

	uc := NewUseCase(repo, props, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:     1,
		PropertyID: 100,
		Kind:       domain.KindReview,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.CompanionSlotID)
	assert.Equal(t, []int64{1}, repo.bookedIDs)
	assert.Equal(t, domain.StatusBookedReview, repo.bookedStatus)
}

func TestExecute_NoCompanionInSamePeriod(t *testing.T) {
	// Ближайший свободный слот уже в дневном периоде
	repo := &fakeSlotRepo{
		slots:     map[int64]*domain.Slot{1: freeSlot(1, 10, "2026-09-07", "11:00")},
		freeLater: []*domain.Slot{freeSlot(2, 10, "2026-09-07", "14:00")},
	}
	props := &fakePropertyRepo{property: &domain.Property{
		ID:         100,
		AreaM2:     150,
		Furnishing: domain.FurnishingSemi,
	}}

	uc := NewUseCase(repo, props, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:     1,
		PropertyID: 100,
		Kind:       domain.KindEntry,
	})
	require.ErrorIs(t, err, ErrNoCompanionSlot)

	// Слоты остались нетронутыми
	assert.Empty(t, repo.bookedIDs)
}

func TestExecute_ForceSingleOverridesDualRule(t *testing.T) {
	repo := &fakeSlotRepo{
		slots: map[int64]*domain.Slot{1: freeSlot(1, 10, "2026-09-07", "11:00")},
	}
	props := &fakePropertyRepo{property: &domain.Property{
		ID:         100,
		AreaM2:     150,
		Furnishing: domain.FurnishingFurnished,
	}}

	uc := NewUseCase(repo, props, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:      1,
		PropertyID:  100,
		Kind:        domain.KindEntry,
		ForceSingle: true,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.CompanionSlotID)
	assert.True(t, resp.ForcedSingle)
	assert.Equal(t, []int64{1}, repo.bookedIDs)
}

func TestExecute_ForceSingleSkipsCompanionSearch(t *testing.T) {
	// Свободный парный слот есть, но оператор отключил правило:
	// бронируется только основной слот
	repo := &fakeSlotRepo{
		slots:     map[int64]*domain.Slot{1: freeSlot(1, 10, "2026-09-07", "09:00")},
		freeLater: []*domain.Slot{freeSlot(2, 10, "2026-09-07", "10:00")},
	}
	props := &fakePropertyRepo{property: &domain.Property{
		ID:         100,
		AreaM2:     150,
		Furnishing: domain.FurnishingFurnished,
	}}

	uc := NewUseCase(repo, props, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:      1,
		PropertyID:  100,
		Kind:        domain.KindEntry,
		ForceSingle: true,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.CompanionSlotID)
	assert.True(t, resp.ForcedSingle)
	assert.Equal(t, []int64{1}, repo.bookedIDs)
}

func TestExecute_SlotNotFree(t *testing.T) {
	busy := freeSlot(1, 10, "2026-09-07", "09:00")
	busy.Available = false
	busy.Status = domain.StatusBookedEntry

	repo := &fakeSlotRepo{slots: map[int64]*domain.Slot{1: busy}}
	props := &fakePropertyRepo{property: &domain.Property{ID: 100, AreaM2: 45}}

	uc := NewUseCase(repo, props, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:     1,
		PropertyID: 100,
		Kind:       domain.KindEntry,
	})
	require.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_StateConflictMapsToNotAvailable(t *testing.T) {
	repo := &fakeSlotRepo{
		slots:         map[int64]*domain.Slot{1: freeSlot(1, 10, "2026-09-07", "09:00")},
		markBookedErr: slotRepo.ErrSlotStateConflict,
	}
	props := &fakePropertyRepo{property: &domain.Property{ID: 100, AreaM2: 45}}

	uc := NewUseCase(repo, props, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:     1,
		PropertyID: 100,
		Kind:       domain.KindEntry,
	})
	require.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_PropertyNotFound(t *testing.T) {
	repo := &fakeSlotRepo{slots: map[int64]*domain.Slot{}}
	props := &fakePropertyRepo{err: propertyRepo.ErrPropertyNotFound}

	uc := NewUseCase(repo, props, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:     1,
		PropertyID: 100,
		Kind:       domain.KindEntry,
	})
	require.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestExecute_InvalidKind(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, &fakePropertyRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:     1,
		PropertyID: 100,
		Kind:       domain.InspectionKind("WALKTHROUGH"),
	})
	require.ErrorIs(t, err, ErrInvalidKind)
}
