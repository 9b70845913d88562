package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/rgalimov/fortuna/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var transactionRows = []string{
	"id", "user_id", "amount", "attempts", "status",
	"receipt_reference", "admin_id", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	repo := New(mockDB, txManager)
	defer ctrl.Finish()
	return repo, mockDB, txManager
}

func pendingRow(id, userID int64, createdAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(transactionRows).
		AddRow(id, userID, 50, 1, domain.StatusPending, nil, nil, createdAt, createdAt)
}

func TestCreate(t *testing.T) {
	repo, mockDB, _ := NewMock(t)
	defer mockDB.Close()
	ctx := context.Background()
	now := time.Now()

	query := regexp.QuoteMeta(`INSERT INTO transactions`)

	t.Run("Created pending", func(t *testing.T) {
		mockDB.ExpectQuery(query).
			WithArgs(int64(100500), 50, 1, domain.StatusPending).
			WillReturnRows(pendingRow(7, 100500, now))

		txn, err := repo.Create(ctx, &domain.Transaction{
			UserID: 100500, Amount: 50, Attempts: 1, Status: domain.StatusPending,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(7), txn.ID)
		assert.Equal(t, domain.StatusPending, txn.Status)
		assert.Nil(t, txn.ReceiptReference)
	})

	t.Run("Query error", func(t *testing.T) {
		mockDB.ExpectQuery(query).
			WithArgs(int64(100500), 50, 1, domain.StatusPending).
			WillReturnError(errors.New("db error"))

		txn, err := repo.Create(ctx, &domain.Transaction{
			UserID: 100500, Amount: 50, Attempts: 1, Status: domain.StatusPending,
		})
		assert.Error(t, err)
		assert.Nil(t, txn)
	})

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mockDB, _ := NewMock(t)
	defer mockDB.Close()
	ctx := context.Background()

	query := regexp.QuoteMeta(`FROM transactions`)

	t.Run("Found", func(t *testing.T) {
		mockDB.ExpectQuery(query).WithArgs(int64(7)).
			WillReturnRows(pendingRow(7, 100500, time.Now()))

		txn, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(100500), txn.UserID)
	})

	t.Run("Not found", func(t *testing.T) {
		mockDB.ExpectQuery(query).WithArgs(int64(404)).WillReturnError(pgx.ErrNoRows)

		txn, err := repo.GetByID(ctx, 404)
		assert.NoError(t, err)
		assert.Nil(t, txn)
	})

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestFinalize(t *testing.T) {
	repo, mockDB, _ := NewMock(t)
	defer mockDB.Close()
	ctx := context.Background()
	now := time.Now()
	adminID := int64(42)

	query := regexp.QuoteMeta(`UPDATE transactions`)

	t.Run("Pending row completed", func(t *testing.T) {
		mockDB.ExpectQuery(query).
			WithArgs(int64(7), domain.StatusCompleted, adminID).
			WillReturnRows(pgxmock.NewRows(transactionRows).
				AddRow(int64(7), int64(100500), 50, 1, domain.StatusCompleted, nil, &adminID, now, now))

		txn, err := repo.Finalize(ctx, 7, domain.StatusCompleted, adminID)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, txn.Status)
		assert.Equal(t, adminID, *txn.AdminID)
	})

	t.Run("CAS miss reports nil", func(t *testing.T) {
		mockDB.ExpectQuery(query).
			WithArgs(int64(7), domain.StatusCompleted, adminID).
			WillReturnError(pgx.ErrNoRows)

		txn, err := repo.Finalize(ctx, 7, domain.StatusCompleted, adminID)
		assert.NoError(t, err)
		assert.Nil(t, txn)
	})

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestAttachReceipt(t *testing.T) {
	repo, mockDB, _ := NewMock(t)
	defer mockDB.Close()
	ctx := context.Background()
	now := time.Now()
	ref := "file-abc123"

	query := regexp.QuoteMeta(`SET receipt_reference`)

	t.Run("Attached to own pending transaction", func(t *testing.T) {
		mockDB.ExpectQuery(query).
			WithArgs(int64(7), int64(100500), ref).
			WillReturnRows(pgxmock.NewRows(transactionRows).
				AddRow(int64(7), int64(100500), 50, 1, domain.StatusPending, &ref, nil, now, now))

		txn, err := repo.AttachReceipt(ctx, 7, 100500, ref)
		assert.NoError(t, err)
		assert.Equal(t, ref, *txn.ReceiptReference)
	})

	t.Run("Foreign or finalized transaction", func(t *testing.T) {
		mockDB.ExpectQuery(query).
			WithArgs(int64(7), int64(777), ref).
			WillReturnError(pgx.ErrNoRows)

		txn, err := repo.AttachReceipt(ctx, 7, 777, ref)
		assert.NoError(t, err)
		assert.Nil(t, txn)
	})

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	repo, mockDB, _ := NewMock(t)
	defer mockDB.Close()
	ctx := context.Background()
	now := time.Now()

	query := regexp.QuoteMeta(`WHERE user_id = $1`)

	t.Run("Two transactions", func(t *testing.T) {
		mockDB.ExpectQuery(query).WithArgs(int64(100500)).
			WillReturnRows(pgxmock.NewRows(transactionRows).
				AddRow(int64(8), int64(100500), 100, 3, domain.StatusPending, nil, nil, now, now).
				AddRow(int64(7), int64(100500), 50, 1, domain.StatusCompleted, nil, nil, now.Add(-time.Hour), now))

		txns, err := repo.ListByUser(ctx, 100500)
		assert.NoError(t, err)
		assert.Len(t, txns, 2)
		assert.Equal(t, int64(8), txns[0].ID)
	})

	t.Run("No transactions", func(t *testing.T) {
		mockDB.ExpectQuery(query).WithArgs(int64(99)).
			WillReturnRows(pgxmock.NewRows(transactionRows))

		txns, err := repo.ListByUser(ctx, 99)
		assert.NoError(t, err)
		assert.Empty(t, txns)
	})

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestListPendingOlderThan(t *testing.T) {
	repo, mockDB, _ := NewMock(t)
	defer mockDB.Close()
	ctx := context.Background()
	cutoff := time.Now().Add(-30 * time.Minute)

	query := regexp.QuoteMeta(`WHERE status = 'pending' AND created_at < $1`)

	mockDB.ExpectQuery(query).WithArgs(cutoff).
		WillReturnRows(pendingRow(7, 100500, cutoff.Add(-time.Hour)))

	txns, err := repo.ListPendingOlderThan(ctx, cutoff)
	assert.NoError(t, err)
	assert.Len(t, txns, 1)
	assert.Equal(t, domain.StatusPending, txns[0].Status)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}
