package approvalservice

import (
	"context"
	"errors"
	"testing"

	"github.com/rgalimov/fortuna/internal/config"
	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/rgalimov/fortuna/internal/service/transactionservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

const adminID int64 = 42

func NewMock(t *testing.T) (*Service, *MockTransactions, *MockLedger, *MockNotifier) {
	ctrl := gomock.NewController(t)
	txns := NewMockTransactions(ctrl)
	ledger := NewMockLedger(ctrl)
	notifier := NewMockNotifier(ctrl)
	cfg := &config.Config{AdminIDs: []int64{adminID}}
	service := New(txns, ledger, notifier, cfg)
	defer ctrl.Finish()
	return service, txns, ledger, notifier
}

func TestSubmitReceipt(t *testing.T) {
	service, txns, _, notifier := NewMock(t)

	t.Run("Attaches receipt and notifies admin", func(t *testing.T) {
		ref := "file-abc"
		txns.EXPECT().
			AttachReceipt(gomock.Any(), int64(7), int64(1), ref).
			Return(&domain.Transaction{ID: 7, UserID: 1, Amount: 50, Attempts: 1, ReceiptReference: &ref}, nil)
		notifier.EXPECT().NotifyAdmin(gomock.Any(), gomock.Any()).Return(nil)

		txn, err := service.SubmitReceipt(context.Background(), 1, 7, ref)
		assert.NoError(t, err)
		assert.Equal(t, &ref, txn.ReceiptReference)
	})

	t.Run("Missing transaction skips notification", func(t *testing.T) {
		txns.EXPECT().
			AttachReceipt(gomock.Any(), int64(9), int64(1), "x").
			Return(nil, transactionservice.ErrNotFound)

		_, err := service.SubmitReceipt(context.Background(), 1, 9, "x")
		assert.ErrorIs(t, err, transactionservice.ErrNotFound)
	})

	t.Run("Notifier failure does not fail submission", func(t *testing.T) {
		txns.EXPECT().
			AttachReceipt(gomock.Any(), int64(7), int64(1), "y").
			Return(&domain.Transaction{ID: 7, UserID: 1}, nil)
		notifier.EXPECT().NotifyAdmin(gomock.Any(), gomock.Any()).Return(errors.New("relay down"))

		_, err := service.SubmitReceipt(context.Background(), 1, 7, "y")
		assert.NoError(t, err)
	})
}

func TestApprove(t *testing.T) {
	t.Run("Finalizes then credits exactly once", func(t *testing.T) {
		service, txns, ledger, notifier := NewMock(t)

		gomock.InOrder(
			txns.EXPECT().
				Finalize(gomock.Any(), int64(7), domain.StatusCompleted, adminID).
				Return(&domain.Transaction{ID: 7, UserID: 1, Attempts: 5, Status: domain.StatusCompleted}, nil),
			ledger.EXPECT().
				Credit(gomock.Any(), int64(1), 5).
				Return(&domain.Attempts{UserID: 1, Paid: 5}, nil),
		)
		notifier.EXPECT().NotifyUser(gomock.Any(), int64(1), gomock.Any()).Return(nil)

		txn, err := service.Approve(context.Background(), 7, adminID)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, txn.Status)
	})

	t.Run("Second approval never reaches the ledger", func(t *testing.T) {
		service, txns, _, _ := NewMock(t)

		txns.EXPECT().
			Finalize(gomock.Any(), int64(7), domain.StatusCompleted, adminID).
			Return(nil, transactionservice.ErrAlreadyFinalized)

		_, err := service.Approve(context.Background(), 7, adminID)
		assert.ErrorIs(t, err, transactionservice.ErrAlreadyFinalized)
	})

	t.Run("Unknown transaction never reaches the ledger", func(t *testing.T) {
		service, txns, _, _ := NewMock(t)

		txns.EXPECT().
			Finalize(gomock.Any(), int64(9), domain.StatusCompleted, adminID).
			Return(nil, transactionservice.ErrNotFound)

		_, err := service.Approve(context.Background(), 9, adminID)
		assert.ErrorIs(t, err, transactionservice.ErrNotFound)
	})

	t.Run("Non-admin is rejected before any state change", func(t *testing.T) {
		service, _, _, _ := NewMock(t)

		_, err := service.Approve(context.Background(), 7, 1)
		assert.ErrorIs(t, err, ErrNotAdmin)
	})
}

func TestDecline(t *testing.T) {
	t.Run("Finalizes without ledger mutation", func(t *testing.T) {
		service, txns, _, notifier := NewMock(t)

		txns.EXPECT().
			Finalize(gomock.Any(), int64(7), domain.StatusDeclined, adminID).
			Return(&domain.Transaction{ID: 7, UserID: 1, Status: domain.StatusDeclined}, nil)
		notifier.EXPECT().NotifyUser(gomock.Any(), int64(1), gomock.Any()).Return(nil)

		txn, err := service.Decline(context.Background(), 7, adminID)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusDeclined, txn.Status)
	})

	t.Run("Non-admin is rejected", func(t *testing.T) {
		service, _, _, _ := NewMock(t)

		_, err := service.Decline(context.Background(), 7, 1)
		assert.ErrorIs(t, err, ErrNotAdmin)
	})
}
