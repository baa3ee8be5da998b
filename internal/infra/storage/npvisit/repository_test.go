package npvisit

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InspectionService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewRepository(db), mock, func() { db.Close() }
}

func TestRepository_Create(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	createdAt := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	originalDate := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	agencyID := int64(300)

	visit := func() *domain.NonProductiveVisit {
		return &domain.NonProductiveVisit{
			SlotID:       10,
			PropertyID:   77,
			ClientID:     3,
			InspectorID:  1,
			AgencyID:     &agencyID,
			OriginalDate: originalDate,
			OriginalTime: "09:00",
			Reason:       "клиент не явился",
			ClientCharge: 100.00,
			PayoutAmount: 30.00,
		}
	}

	t.Run("created", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO non_productive_visits").
			WithArgs(int64(10), int64(77), int64(3), int64(1), agencyID, originalDate, "09:00",
				"клиент не явился", 100.00, 30.00, false).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(500), createdAt))

		v, err := repo.Create(context.Background(), visit())
		assert.NoError(t, err)
		assert.Equal(t, int64(500), v.ID)
		assert.Equal(t, createdAt, v.CreatedAt)
	})

	t.Run("duplicate slot rejected", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO non_productive_visits").
			WithArgs(int64(10), int64(77), int64(3), int64(1), agencyID, originalDate, "09:00",
				"клиент не явился", 100.00, 30.00, false).
			WillReturnError(&pq.Error{Code: uniqueViolationCode})

		v, err := repo.Create(context.Background(), visit())
		assert.Nil(t, v)
		assert.ErrorIs(t, err, ErrVisitExists)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkPaid(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	visitColumns := []string{
		"id", "slot_id", "property_id", "client_id", "inspector_id", "agency_id",
		"original_date", "original_time", "reason",
		"client_charge", "payout_amount", "paid", "paid_at", "created_at",
	}
	paidAt := time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC)
	originalDate := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	t.Run("marked", func(t *testing.T) {
		mock.ExpectExec("UPDATE non_productive_visits SET").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkPaid(context.Background(), 500)
		assert.NoError(t, err)
	})

	t.Run("already paid", func(t *testing.T) {
		mock.ExpectExec("UPDATE non_productive_visits SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		// запись существует, но уже выплачена
		mock.ExpectQuery("SELECT (.+) FROM non_productive_visits").
			WithArgs(int64(500)).
			WillReturnRows(sqlmock.NewRows(visitColumns).
				AddRow(int64(500), int64(10), int64(77), int64(3), int64(1), int64(300),
					originalDate, "09:00", "клиент не явился", 100.00, 30.00, true, paidAt, paidAt))

		err := repo.MarkPaid(context.Background(), 500)
		assert.ErrorIs(t, err, ErrAlreadyPaid)
	})

	t.Run("missing visit", func(t *testing.T) {
		mock.ExpectExec("UPDATE non_productive_visits SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM non_productive_visits").
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(visitColumns))

		err := repo.MarkPaid(context.Background(), 404)
		assert.ErrorIs(t, err, ErrVisitNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExistsBySlot(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	t.Run("exists", func(t *testing.T) {
		mock.ExpectQuery("SELECT 1 FROM non_productive_visits").
			WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

		exists, err := repo.ExistsBySlot(context.Background(), 10)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not registered", func(t *testing.T) {
		mock.ExpectQuery("SELECT 1 FROM non_productive_visits").
			WithArgs(int64(11)).
			WillReturnRows(sqlmock.NewRows([]string{"1"}))

		exists, err := repo.ExistsBySlot(context.Background(), 11)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteBySlot(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectExec("DELETE FROM non_productive_visits").
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	deleted, err := repo.DeleteBySlot(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
