package purge_old_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/property"
	"github.com/m04kA/SMC-InspectionService/pkg/ptr"
)

type fakeSlotRepo struct {
	refs       []*domain.PurgeRef
	deletedIDs []int64
	deleteErr  map[int64]error
}

func (f *fakeSlotRepo) ListOlderThan(_ context.Context, _ time.Time) ([]*domain.PurgeRef, error) {
	return f.refs, nil
}

func (f *fakeSlotRepo) Delete(_ context.Context, id int64) error {
	if err := f.deleteErr[id]; err != nil {
		return err
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakePropertyRepo struct {
	remaining  map[int64]int64
	deletedIDs []int64
	deleted    map[int64]bool
}

func (f *fakePropertyRepo) CountByClient(_ context.Context, clientID int64) (int64, error) {
	return f.remaining[clientID], nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, id int64) error {
	if f.deleted[id] {
		return propertyRepo.ErrPropertyNotFound
	}
	if f.deleted == nil {
		f.deleted = make(map[int64]bool)
	}
	f.deleted[id] = true
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeClientRepo struct {
	deletedIDs []int64
}

func (f *fakeClientRepo) Delete(_ context.Context, id int64) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeVisitRepo struct {
	bySlot map[int64]int64
}

func (f *fakeVisitRepo) DeleteBySlot(_ context.Context, slotID int64) (int64, error) {
	return f.bySlot[slotID], nil
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

func newTestUseCase(slots *fakeSlotRepo, props *fakePropertyRepo, clients *fakeClientRepo, visits *fakeVisitRepo) *UseCase {
	uc := NewUseCase(slots, props, clients, visits, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_CascadeDeletesSlotPropertyAndClient(t *testing.T) {
	slots := &fakeSlotRepo{refs: []*domain.PurgeRef{
		{SlotID: 1, PropertyID: ptr.Ptr(int64(100)), ClientID: ptr.Ptr(int64(200))},
	}}
	props := &fakePropertyRepo{remaining: map[int64]int64{200: 0}}
	clients := &fakeClientRepo{}
	visits := &fakeVisitRepo{bySlot: map[int64]int64{1: 1}}

	uc := newTestUseCase(slots, props, clients, visits)

	resp, err := uc.Execute(context.Background(), &Request{RetentionMonths: 3})
	require.NoError(t, err)

	// 3 месяца по 30 дней от 2026-08-31
	assert.Equal(t, "2026-06-02", resp.Cutoff)
	assert.Equal(t, 1, resp.SlotsDeleted)
	assert.Equal(t, 1, resp.VisitsDeleted)
	assert.Equal(t, 1, resp.PropertiesDeleted)
	assert.Equal(t, 1, resp.ClientsDeleted)
	assert.Equal(t, 0, resp.UnitsFailed)

	assert.Equal(t, []int64{1}, slots.deletedIDs)
	assert.Equal(t, []int64{100}, props.deletedIDs)
	assert.Equal(t, []int64{200}, clients.deletedIDs)
}

func TestExecute_ClientWithOtherPropertiesKept(t *testing.T) {
	slots := &fakeSlotRepo{refs: []*domain.PurgeRef{
		{SlotID: 1, PropertyID: ptr.Ptr(int64(100)), ClientID: ptr.Ptr(int64(200))},
	}}
	props := &fakePropertyRepo{remaining: map[int64]int64{200: 2}}
	clients := &fakeClientRepo{}

	uc := newTestUseCase(slots, props, clients, &fakeVisitRepo{})

	resp, err := uc.Execute(context.Background(), &Request{RetentionMonths: 3})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.PropertiesDeleted)
	assert.Equal(t, 0, resp.ClientsDeleted)
	assert.Empty(t, clients.deletedIDs)
}

func TestExecute_UnboundSlotDeletedAlone(t *testing.T) {
	slots := &fakeSlotRepo{refs: []*domain.PurgeRef{{SlotID: 1}}}
	props := &fakePropertyRepo{}
	clients := &fakeClientRepo{}

	uc := newTestUseCase(slots, props, clients, &fakeVisitRepo{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.SlotsDeleted)
	assert.Equal(t, 0, resp.PropertiesDeleted)
	assert.Empty(t, props.deletedIDs)
}

func TestExecute_SharedPropertyDeletedOnce(t *testing.T) {
	// Два слота одного бронирования ссылаются на один объект
	slots := &fakeSlotRepo{refs: []*domain.PurgeRef{
		{SlotID: 1, PropertyID: ptr.Ptr(int64(100)), ClientID: ptr.Ptr(int64(200))},
		{SlotID: 2, PropertyID: ptr.Ptr(int64(100)), ClientID: ptr.Ptr(int64(200))},
	}}
	props := &fakePropertyRepo{remaining: map[int64]int64{200: 1}}
	clients := &fakeClientRepo{}

	uc := newTestUseCase(slots, props, clients, &fakeVisitRepo{})

	resp, err := uc.Execute(context.Background(), &Request{RetentionMonths: 3})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.SlotsDeleted)
	assert.Equal(t, 1, resp.PropertiesDeleted)
	assert.Equal(t, 0, resp.UnitsFailed)
	assert.Equal(t, []int64{100}, props.deletedIDs)
}

func TestExecute_FailedUnitDoesNotStopOthers(t *testing.T) {
	slots := &fakeSlotRepo{
		refs: []*domain.PurgeRef{
			{SlotID: 1},
			{SlotID: 2},
			{SlotID: 3},
		},
		deleteErr: map[int64]error{2: errors.New("deadlock detected")},
	}

	uc := newTestUseCase(slots, &fakePropertyRepo{}, &fakeClientRepo{}, &fakeVisitRepo{})

	resp, err := uc.Execute(context.Background(), &Request{RetentionMonths: 3})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.SlotsDeleted)
	assert.Equal(t, 1, resp.UnitsFailed)
	assert.ElementsMatch(t, []int64{1, 3}, slots.deletedIDs)
}

func TestExecute_NegativeRetention(t *testing.T) {
	uc := newTestUseCase(&fakeSlotRepo{}, &fakePropertyRepo{}, &fakeClientRepo{}, &fakeVisitRepo{})

	_, err := uc.Execute(context.Background(), &Request{RetentionMonths: -2})
	require.ErrorIs(t, err, ErrInvalidInput)
}
