package close_slot

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	slotRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/slot"
)

type fakeSlotRepo struct {
	slot *domain.Slot

	closedID      int64
	closureReason string
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	if f.slot == nil || f.slot.ID != id {
		return nil, slotRepo.ErrSlotNotFound
	}
	cp := *f.slot
	return &cp, nil
}

func (f *fakeSlotRepo) Close(_ context.Context, id int64) error {
	f.closedID = id
	return nil
}

func (f *fakeSlotRepo) CreateClosure(_ context.Context, slotID int64, reason string) (*domain.ClosureRecord, error) {
	f.closureReason = reason
	return &domain.ClosureRecord{ID: 700, SlotID: slotID, Reason: reason}, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func freeSlot(inspectorID int64) *domain.Slot {
	return &domain.Slot{
		ID:          1,
		InspectorID: inspectorID,
		Date:        time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		Time:        "09:00",
		Available:   true,
		Status:      domain.StatusFree,
	}
}

func TestExecute_ClosesOwnSlot(t *testing.T) {
	repo := &fakeSlotRepo{slot: freeSlot(10)}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:  1,
		ActorID: 10,
		Reason:  "  отпуск  ",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.SlotID)
	assert.Equal(t, int64(700), resp.ClosureID)
	assert.Equal(t, string(domain.StatusClosed), resp.Status)

	assert.Equal(t, int64(1), repo.closedID)
	assert.Equal(t, "отпуск", repo.closureReason)
}

func TestExecute_AdminClosesForeignSlot(t *testing.T) {
	repo := &fakeSlotRepo{slot: freeSlot(10)}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:  1,
		ActorID: 99,
		IsAdmin: true,
		Reason:  "болезнь специалиста",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.closedID)
}

func TestExecute_ForeignSlotDenied(t *testing.T) {
	repo := &fakeSlotRepo{slot: freeSlot(10)}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:  1,
		ActorID: 99,
		Reason:  "отпуск",
	})
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.closedID)
}

func TestExecute_BookedSlotRejected(t *testing.T) {
	booked := freeSlot(10)
	booked.Available = false
	booked.Status = domain.StatusBookedEntry

	uc := NewUseCase(&fakeSlotRepo{slot: booked}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:  1,
		ActorID: 10,
		Reason:  "отпуск",
	})
	require.ErrorIs(t, err, ErrSlotNotFree)
}

func TestExecute_BlankReasonRejected(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{slot: freeSlot(10)}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:  1,
		ActorID: 10,
		Reason:  "   ",
	})
	require.ErrorIs(t, err, ErrReasonRequired)
}

func TestExecute_TooLongReasonRejected(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{slot: freeSlot(10)}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:  1,
		ActorID: 10,
		Reason:  strings.Repeat("a", domain.MaxClosureReasonLength+1),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
