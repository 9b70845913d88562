package transactionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

const maxAmount = 10000

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo, maxAmount)
	defer ctrl.Finish()
	return service, repo
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name        string
		userID      int64
		amount      int
		attempts    int
		prepareMock func()
		expectedErr error
	}{
		{
			name:     "Creates pending transaction",
			userID:   1,
			amount:   50,
			attempts: 1,
			prepareMock: func() {
				repo.EXPECT().
					Create(gomock.Any(), &domain.Transaction{UserID: 1, Amount: 50, Attempts: 1, Status: domain.StatusPending}).
					Return(&domain.Transaction{ID: 7, UserID: 1, Amount: 50, Attempts: 1, Status: domain.StatusPending}, nil)
			},
		},
		{
			name:        "Zero amount rejected",
			userID:      1,
			amount:      0,
			attempts:    1,
			prepareMock: func() {},
			expectedErr: ErrAmountOutOfRange,
		},
		{
			name:        "Amount above maximum rejected",
			userID:      1,
			amount:      maxAmount + 1,
			attempts:    1,
			prepareMock: func() {},
			expectedErr: ErrAmountOutOfRange,
		},
		{
			name:        "Non-positive attempts rejected",
			userID:      1,
			amount:      50,
			attempts:    0,
			prepareMock: func() {},
			expectedErr: ErrInvalidAttemptCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			txn, err := service.Create(context.Background(), tt.userID, tt.amount, tt.attempts)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, txn)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.StatusPending, txn.Status)
				assert.NotZero(t, txn.ID)
			}
		})
	}
}

func TestGet(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Known transaction", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&domain.Transaction{ID: 7}, nil)
		txn, err := service.Get(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), txn.ID)
	})

	t.Run("Unknown transaction", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)
		txn, err := service.Get(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, txn)
	})
}

func TestFinalize(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name        string
		status      domain.TransactionStatus
		prepareMock func()
		expectedErr error
	}{
		{
			name:   "Pending transaction completes",
			status: domain.StatusCompleted,
			prepareMock: func() {
				repo.EXPECT().
					Finalize(gomock.Any(), int64(7), domain.StatusCompleted, int64(42)).
					Return(&domain.Transaction{ID: 7, Status: domain.StatusCompleted}, nil)
			},
		},
		{
			name:   "Unknown id reports not found",
			status: domain.StatusDeclined,
			prepareMock: func() {
				repo.EXPECT().Finalize(gomock.Any(), int64(7), domain.StatusDeclined, int64(42)).Return(nil, nil)
				repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, nil)
			},
			expectedErr: ErrNotFound,
		},
		{
			name:   "Already finalized transaction is not retried",
			status: domain.StatusCompleted,
			prepareMock: func() {
				repo.EXPECT().Finalize(gomock.Any(), int64(7), domain.StatusCompleted, int64(42)).Return(nil, nil)
				repo.EXPECT().
					GetByID(gomock.Any(), int64(7)).
					Return(&domain.Transaction{ID: 7, Status: domain.StatusCompleted}, nil)
			},
			expectedErr: ErrAlreadyFinalized,
		},
		{
			name:        "Pending is not a terminal status",
			status:      domain.StatusPending,
			prepareMock: func() {},
			expectedErr: errors.New("finalize status must be terminal"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			txn, err := service.Finalize(context.Background(), 7, tt.status, 42)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				assert.Nil(t, txn)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, txn.Status)
			}
		})
	}
}

func TestAttachReceipt(t *testing.T) {
	service, repo := NewMock(t)
	ref := "file-abc"

	t.Run("Attaches to own pending transaction", func(t *testing.T) {
		repo.EXPECT().
			AttachReceipt(gomock.Any(), int64(7), int64(1), ref).
			Return(&domain.Transaction{ID: 7, UserID: 1, ReceiptReference: &ref}, nil)
		txn, err := service.AttachReceipt(context.Background(), 7, 1, ref)
		assert.NoError(t, err)
		assert.Equal(t, &ref, txn.ReceiptReference)
	})

	t.Run("Foreign transaction reported as missing", func(t *testing.T) {
		repo.EXPECT().AttachReceipt(gomock.Any(), int64(7), int64(2), ref).Return(nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&domain.Transaction{ID: 7, UserID: 1}, nil)
		_, err := service.AttachReceipt(context.Background(), 7, 2, ref)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Finalized transaction rejects receipt", func(t *testing.T) {
		repo.EXPECT().AttachReceipt(gomock.Any(), int64(7), int64(1), ref).Return(nil, nil)
		repo.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(&domain.Transaction{ID: 7, UserID: 1, Status: domain.StatusDeclined}, nil)
		_, err := service.AttachReceipt(context.Background(), 7, 1, ref)
		assert.ErrorIs(t, err, ErrAlreadyFinalized)
	})
}

func TestListPendingOlderThan(t *testing.T) {
	service, repo := NewMock(t)
	cutoff := time.Now().Add(-time.Hour)

	repo.EXPECT().
		ListPendingOlderThan(gomock.Any(), cutoff).
		Return([]domain.Transaction{{ID: 1, Status: domain.StatusPending}}, nil)

	txns, err := service.ListPendingOlderThan(context.Background(), cutoff)
	assert.NoError(t, err)
	assert.Len(t, txns, 1)
}
