package approvalservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgalimov/fortuna/internal/config"
	"github.com/rgalimov/fortuna/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=approvalservice.go -destination=mock_approvalservice.go -package=approvalservice

type Transactions interface {
	Finalize(ctx context.Context, id int64, status domain.TransactionStatus, adminID int64) (*domain.Transaction, error)
	AttachReceipt(ctx context.Context, id, userID int64, receiptReference string) (*domain.Transaction, error)
}

type Ledger interface {
	Credit(ctx context.Context, userID int64, attempts int) (*domain.Attempts, error)
}

// Notifier is the messaging relay boundary. Delivery failures never affect a
// committed state transition; they are logged and dropped.
type Notifier interface {
	NotifyUser(ctx context.Context, userID int64, text string) error
	NotifyAdmin(ctx context.Context, text string) error
}

var ErrNotAdmin = errors.New("caller is not an administrator")

type Service struct {
	txns     Transactions
	ledger   Ledger
	notifier Notifier
	cfg      *config.Config
}

func New(txns Transactions, ledger Ledger, notifier Notifier, cfg *config.Config) *Service {
	return &Service{
		txns:     txns,
		ledger:   ledger,
		notifier: notifier,
		cfg:      cfg,
	}
}

// SubmitReceipt attaches the receipt reference to the user's pending
// transaction and asks the administrator to review it.
func (s *Service) SubmitReceipt(ctx context.Context, userID, txnID int64, receiptReference string) (*domain.Transaction, error) {
	txn, err := s.txns.AttachReceipt(ctx, txnID, userID, receiptReference)
	if err != nil {
		return nil, err
	}

	s.notifyAdmin(ctx, fmt.Sprintf(
		"Receipt %s submitted for transaction %d: user %d paid %d for %d attempts. Approve or decline transaction %d.",
		receiptReference, txn.ID, txn.UserID, txn.Amount, txn.Attempts, txn.ID,
	))
	return txn, nil
}

// Approve finalizes the transaction first and credits the ledger only when the
// pending->completed transition succeeded. A second approval of the same
// transaction fails on finalize and therefore can never credit twice.
func (s *Service) Approve(ctx context.Context, txnID, adminID int64) (*domain.Transaction, error) {
	if !s.cfg.IsAdmin(adminID) {
		return nil, ErrNotAdmin
	}

	txn, err := s.txns.Finalize(ctx, txnID, domain.StatusCompleted, adminID)
	if err != nil {
		return nil, err
	}

	if _, err := s.ledger.Credit(ctx, txn.UserID, txn.Attempts); err != nil {
		zap.L().Error("approved transaction could not be credited",
			zap.Int64("transaction_id", txn.ID), zap.Error(err))
		return nil, err
	}

	s.notifyUser(ctx, txn.UserID, fmt.Sprintf(
		"Payment confirmed, %d attempts added. Good luck!", txn.Attempts,
	))
	return txn, nil
}

// Decline finalizes the transaction without ever touching the ledger.
func (s *Service) Decline(ctx context.Context, txnID, adminID int64) (*domain.Transaction, error) {
	if !s.cfg.IsAdmin(adminID) {
		return nil, ErrNotAdmin
	}

	txn, err := s.txns.Finalize(ctx, txnID, domain.StatusDeclined, adminID)
	if err != nil {
		return nil, err
	}

	s.notifyUser(ctx, txn.UserID, "Your payment was declined. Please try again.")
	return txn, nil
}

func (s *Service) notifyUser(ctx context.Context, userID int64, text string) {
	if err := s.notifier.NotifyUser(ctx, userID, text); err != nil {
		zap.L().Warn("failed to notify user", zap.Int64("user_id", userID), zap.Error(err))
	}
}

func (s *Service) notifyAdmin(ctx context.Context, text string) {
	if err := s.notifier.NotifyAdmin(ctx, text); err != nil {
		zap.L().Warn("failed to notify admin", zap.Error(err))
	}
}
