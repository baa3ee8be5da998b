package register_failed_visit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
	visitRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/npvisit"
	slotRepo "github.com/m04kA/SMC-InspectionService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-InspectionService/pkg/types"
)

type fakeSlotRepo struct {
	slot     *domain.Slot
	failedID int64
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	if f.slot == nil || f.slot.ID != id {
		return nil, slotRepo.ErrSlotNotFound
	}
	cp := *f.slot
	return &cp, nil
}

func (f *fakeSlotRepo) MarkFailedVisit(_ context.Context, id int64) error {
	f.failedID = id
	return nil
}

type fakePropertyRepo struct {
	property *domain.Property
}

func (f *fakePropertyRepo) GetByID(_ context.Context, _ int64) (*domain.Property, error) {
	return f.property, nil
}

type fakeClientRepo struct {
	clientID int64
	added    float64
}

func (f *fakeClientRepo) AddToDebtBalance(_ context.Context, id int64, amount float64) error {
	f.clientID = id
	f.added = amount
	return nil
}

type fakeVisitRepo struct {
	created *domain.NonProductiveVisit
	err     error
}

func (f *fakeVisitRepo) Create(_ context.Context, v *domain.NonProductiveVisit) (*domain.NonProductiveVisit, error) {
	if f.err != nil {
		return nil, f.err
	}
	cp := *v
	cp.ID = 500
	f.created = &cp
	return &cp, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func bookedSlot(status domain.SlotStatus) *domain.Slot {
	propertyID := int64(100)
	return &domain.Slot{
		ID:          1,
		InspectorID: 10,
		Date:        time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		Time:        "09:00",
		Status:      status,
		PropertyID:  &propertyID,
	}
}

func testProperty() *domain.Property {
	return &domain.Property{
		ID:         100,
		ClientID:   200,
		AgencyID:   300,
		AreaM2:     80,
		Furnishing: domain.FurnishingFurnished,
		BaseCharge: 100,
	}
}

func TestExecute_RegistersVisitAndDebt(t *testing.T) {
	slots := &fakeSlotRepo{slot: bookedSlot(domain.StatusBookedEntry)}
	clients := &fakeClientRepo{}
	visitsR := &fakeVisitRepo{}

	uc := NewUseCase(slots, &fakePropertyRepo{property: testProperty()}, clients, visitsR, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SlotID: 1, Reason: "клиент не явился"})
	require.NoError(t, err)

	// Стоимость осмотра 100: долг клиента +100, компенсация 30% = 30
	assert.Equal(t, int64(500), resp.VisitID)
	assert.Equal(t, int64(200), resp.ClientID)
	assert.InDelta(t, 100.0, resp.ClientCharge, 0.001)
	assert.InDelta(t, 30.0, resp.PayoutAmount, 0.001)

	assert.Equal(t, int64(200), clients.clientID)
	assert.InDelta(t, 100.0, clients.added, 0.001)
	assert.Equal(t, int64(1), slots.failedID)

	// Запись хранит причину, агентство и исходные дату/время осмотра
	require.NotNil(t, visitsR.created)
	assert.Equal(t, int64(10), visitsR.created.InspectorID)
	assert.Equal(t, "клиент не явился", visitsR.created.Reason)
	require.NotNil(t, visitsR.created.AgencyID)
	assert.Equal(t, int64(300), *visitsR.created.AgencyID)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), visitsR.created.OriginalDate)
	assert.Equal(t, types.TimeString("09:00"), visitsR.created.OriginalTime)
	assert.False(t, visitsR.created.Paid)
}

func TestExecute_ReasonRequired(t *testing.T) {
	slots := &fakeSlotRepo{slot: bookedSlot(domain.StatusBookedEntry)}

	uc := NewUseCase(slots, &fakePropertyRepo{property: testProperty()}, &fakeClientRepo{},
		&fakeVisitRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: 1, Reason: "   "})
	require.ErrorIs(t, err, ErrReasonRequired)
	assert.Zero(t, slots.failedID)
}

func TestExecute_ReviewChargeHalved(t *testing.T) {
	slots := &fakeSlotRepo{slot: bookedSlot(domain.StatusBookedReview)}
	clients := &fakeClientRepo{}

	uc := NewUseCase(slots, &fakePropertyRepo{property: testProperty()}, clients, &fakeVisitRepo{}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SlotID: 1, Reason: "клиент не явился"})
	require.NoError(t, err)

	assert.InDelta(t, 50.0, resp.ClientCharge, 0.001)
	assert.InDelta(t, 15.0, resp.PayoutAmount, 0.001)
	assert.InDelta(t, 50.0, clients.added, 0.001)
}

func TestExecute_ExplicitChargeOverridesTariff(t *testing.T) {
	slots := &fakeSlotRepo{slot: bookedSlot(domain.StatusBookedExit)}
	clients := &fakeClientRepo{}
	charge := 75.25

	uc := NewUseCase(slots, &fakePropertyRepo{property: testProperty()}, clients, &fakeVisitRepo{}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SlotID: 1, Reason: "клиент не явился", ClientCharge: &charge})
	require.NoError(t, err)

	assert.InDelta(t, 75.25, resp.ClientCharge, 0.001)
	assert.InDelta(t, 22.58, resp.PayoutAmount, 0.001)
}

func TestExecute_SlotNotBooked(t *testing.T) {
	free := bookedSlot(domain.StatusFree)
	free.PropertyID = nil
	slots := &fakeSlotRepo{slot: free}

	uc := NewUseCase(slots, &fakePropertyRepo{}, &fakeClientRepo{}, &fakeVisitRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: 1, Reason: "клиент не явился"})
	require.ErrorIs(t, err, ErrSlotNotBooked)
	assert.Zero(t, slots.failedID)
}

func TestExecute_DuplicateVisit(t *testing.T) {
	slots := &fakeSlotRepo{slot: bookedSlot(domain.StatusBookedEntry)}

	uc := NewUseCase(slots, &fakePropertyRepo{property: testProperty()}, &fakeClientRepo{},
		&fakeVisitRepo{err: visitRepo.ErrVisitExists}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: 1, Reason: "клиент не явился"})
	require.ErrorIs(t, err, ErrVisitExists)
}

func TestExecute_NegativeCharge(t *testing.T) {
	charge := -10.0
	uc := NewUseCase(&fakeSlotRepo{}, &fakePropertyRepo{}, &fakeClientRepo{}, &fakeVisitRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: 1, Reason: "клиент не явился", ClientCharge: &charge})
	require.ErrorIs(t, err, ErrInvalidInput)
}
