package transactionservice

import (
	"context"
	"errors"
	"time"

	"github.com/rgalimov/fortuna/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=transactionservice.go -destination=mock_transactionservice.go -package=transactionservice

// Repo adapters treat Finalize and AttachReceipt as compare-and-swap updates
// guarded on the pending status, reporting nil when no pending row matched.
type Repo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	Finalize(ctx context.Context, id int64, status domain.TransactionStatus, adminID int64) (*domain.Transaction, error)
	AttachReceipt(ctx context.Context, id, userID int64, receiptReference string) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Transaction, error)
}

var (
	ErrAmountOutOfRange    = errors.New("amount must be positive and within the configured maximum")
	ErrInvalidAttemptCount = errors.New("attempt count must be positive")
	ErrNotFound            = errors.New("transaction not found")
	ErrAlreadyFinalized    = errors.New("transaction already finalized")
)

type Service struct {
	repo      Repo
	maxAmount int
}

func New(repo Repo, maxAmount int) *Service {
	return &Service{
		repo:      repo,
		maxAmount: maxAmount,
	}
}

func (s *Service) Create(ctx context.Context, userID int64, amount, attempts int) (*domain.Transaction, error) {
	if amount <= 0 || amount > s.maxAmount {
		return nil, ErrAmountOutOfRange
	}
	if attempts <= 0 {
		return nil, ErrInvalidAttemptCount
	}

	txn, err := s.repo.Create(ctx, &domain.Transaction{
		UserID:   userID,
		Amount:   amount,
		Attempts: attempts,
		Status:   domain.StatusPending,
	})
	if err != nil {
		zap.L().Error("failed to create transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Transaction, error) {
	txn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get transaction", zap.Error(err))
		return nil, err
	}
	if txn == nil {
		return nil, ErrNotFound
	}
	return txn, nil
}

// Finalize performs the single pending -> completed|declined transition. Of two
// concurrent calls on the same transaction exactly one succeeds; the other gets
// ErrAlreadyFinalized.
func (s *Service) Finalize(ctx context.Context, id int64, status domain.TransactionStatus, adminID int64) (*domain.Transaction, error) {
	if status != domain.StatusCompleted && status != domain.StatusDeclined {
		return nil, errors.New("finalize status must be terminal")
	}

	txn, err := s.repo.Finalize(ctx, id, status, adminID)
	if err != nil {
		zap.L().Error("failed to finalize transaction", zap.Error(err))
		return nil, err
	}
	if txn != nil {
		return txn, nil
	}

	// The CAS missed: either the id is unknown or the transaction left pending.
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	return nil, ErrAlreadyFinalized
}

func (s *Service) AttachReceipt(ctx context.Context, id, userID int64, receiptReference string) (*domain.Transaction, error) {
	txn, err := s.repo.AttachReceipt(ctx, id, userID, receiptReference)
	if err != nil {
		zap.L().Error("failed to attach receipt", zap.Error(err))
		return nil, err
	}
	if txn != nil {
		return txn, nil
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// A transaction owned by another user is reported as missing.
	if existing == nil || existing.UserID != userID {
		return nil, ErrNotFound
	}
	return nil, ErrAlreadyFinalized
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	txns, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

func (s *Service) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Transaction, error) {
	txns, err := s.repo.ListPendingOlderThan(ctx, cutoff)
	if err != nil {
		zap.L().Error("failed to list pending transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}
