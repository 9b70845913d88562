package memoryrepo

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerCreditAndConsume(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()

	attempts, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, attempts)

	attempts, err = repo.Credit(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts.Paid)

	attempts, err = repo.Consume(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, attempts.Remaining())

	// Overspending reads as a nil row, never as an error.
	attempts, err = repo.Consume(ctx, 1, 2)
	require.NoError(t, err)
	assert.Nil(t, attempts)
}

func TestLedgerConcurrentConsume(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	_, err := repo.Credit(ctx, 1, 1)
	require.NoError(t, err)

	const workers = 16
	var succeeded atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			attempts, err := repo.Consume(ctx, 1, 1)
			assert.NoError(t, err)
			if attempts != nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), succeeded.Load())
	final, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, final.Remaining())
}

func TestLedgerConcurrentCredit(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()

	const workers = 32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Credit(ctx, 1, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	attempts, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, workers, attempts.Paid)
}

func TestTransactionFinalizeOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()
	created, err := repo.Create(ctx, &domain.Transaction{
		UserID: 100500, Amount: 50, Attempts: 1, Status: domain.StatusPending,
	})
	require.NoError(t, err)

	const workers = 8
	var succeeded atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			txn, err := repo.Finalize(ctx, created.ID, domain.StatusCompleted, 42)
			assert.NoError(t, err)
			if txn != nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), succeeded.Load())
	final, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, final.Status)
}

func TestTransactionAttachReceipt(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()
	created, err := repo.Create(ctx, &domain.Transaction{
		UserID: 100500, Amount: 50, Attempts: 1, Status: domain.StatusPending,
	})
	require.NoError(t, err)

	// Another user's id misses the row.
	txn, err := repo.AttachReceipt(ctx, created.ID, 777, "file-abc123")
	require.NoError(t, err)
	assert.Nil(t, txn)

	txn, err = repo.AttachReceipt(ctx, created.ID, 100500, "file-abc123")
	require.NoError(t, err)
	assert.Equal(t, "file-abc123", *txn.ReceiptReference)

	_, err = repo.Finalize(ctx, created.ID, domain.StatusDeclined, 42)
	require.NoError(t, err)

	txn, err = repo.AttachReceipt(ctx, created.ID, 100500, "file-def456")
	require.NoError(t, err)
	assert.Nil(t, txn)
}

func TestPrizeClaim(t *testing.T) {
	ctx := context.Background()
	repo := NewPrizeRepository()
	created, err := repo.Add(ctx, &domain.Prize{UserID: 100500, Kind: domain.PrizeMoney, Value: "100"})
	require.NoError(t, err)

	claimed, err := repo.Claim(ctx, created.ID, 777)
	require.NoError(t, err)
	assert.False(t, claimed)

	claimed, err = repo.Claim(ctx, created.ID, 100500)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = repo.Claim(ctx, created.ID, 100500)
	require.NoError(t, err)
	assert.False(t, claimed)

	prizes, err := repo.ListUnclaimed(ctx, 100500)
	require.NoError(t, err)
	assert.Empty(t, prizes)
}

func TestMethodCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMethodRepository()

	created, err := repo.Create(ctx, "SBP", "phone +7 900 000-00-00")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.IsActive)

	// Names are unique case-insensitively.
	dup, err := repo.Create(ctx, "sbp", "other")
	require.NoError(t, err)
	assert.Nil(t, dup)

	toggled, err := repo.Toggle(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
