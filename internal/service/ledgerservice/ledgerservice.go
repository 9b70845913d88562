package ledgerservice

import (
	"context"
	"errors"

	"github.com/rgalimov/fortuna/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

// Repo adapters must make Credit and Consume atomic per user: Consume may only
// spend what remains and reports a nil account when it cannot.
type Repo interface {
	Get(ctx context.Context, userID int64) (*domain.Attempts, error)
	Credit(ctx context.Context, userID int64, attempts int) (*domain.Attempts, error)
	Consume(ctx context.Context, userID int64, count int) (*domain.Attempts, error)
}

var (
	ErrInvalidAttemptCount  = errors.New("attempt count must be positive")
	ErrInsufficientAttempts = errors.New("insufficient attempts")
)

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// Get returns the attempt counters for a user. Unknown users read as a zero
// balance; no account row is created.
func (s *Service) Get(ctx context.Context, userID int64) (*domain.Attempts, error) {
	attempts, err := s.repo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get attempts", zap.Error(err))
		return nil, err
	}
	if attempts == nil {
		return &domain.Attempts{UserID: userID}, nil
	}
	return attempts, nil
}

// Credit is an unconditional increment of the paid counter. Callers that need
// at-most-once crediting guard it themselves (see the approval workflow).
func (s *Service) Credit(ctx context.Context, userID int64, attempts int) (*domain.Attempts, error) {
	if attempts <= 0 {
		return nil, ErrInvalidAttemptCount
	}
	updated, err := s.repo.Credit(ctx, userID, attempts)
	if err != nil {
		zap.L().Error("failed to credit attempts", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Consume(ctx context.Context, userID int64, count int) (*domain.Attempts, error) {
	if count <= 0 {
		return nil, ErrInvalidAttemptCount
	}
	updated, err := s.repo.Consume(ctx, userID, count)
	if err != nil {
		zap.L().Error("failed to consume attempts", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrInsufficientAttempts
	}
	return updated, nil
}
