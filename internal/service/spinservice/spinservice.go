package spinservice

import (
	"context"
	"errors"

	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/rgalimov/fortuna/internal/wheel"
	"go.uber.org/zap"
)

//go:generate mockgen -source=spinservice.go -destination=mock_spinservice.go -package=spinservice

type Ledger interface {
	Consume(ctx context.Context, userID int64, count int) (*domain.Attempts, error)
	Credit(ctx context.Context, userID int64, attempts int) (*domain.Attempts, error)
}

type PrizeRepo interface {
	Add(ctx context.Context, prize *domain.Prize) (*domain.Prize, error)
	ListUnclaimed(ctx context.Context, userID int64) ([]domain.Prize, error)
	Claim(ctx context.Context, id, userID int64) (bool, error)
}

type Drawer interface {
	Draw() wheel.Sector
}

var ErrPrizeNotFound = errors.New("prize not found")

type Result struct {
	Prize     wheel.Sector
	Remaining int
}

type Service struct {
	ledger Ledger
	prizes PrizeRepo
	wheel  Drawer
}

func New(ledger Ledger, prizes PrizeRepo, drawer Drawer) *Service {
	return &Service{
		ledger: ledger,
		prizes: prizes,
		wheel:  drawer,
	}
}

// Spin consumes exactly one attempt before drawing, so a draw can grant at most
// one bonus credit and a user can never spin past the paid balance.
func (s *Service) Spin(ctx context.Context, userID int64) (*Result, error) {
	attempts, err := s.ledger.Consume(ctx, userID, 1)
	if err != nil {
		return nil, err
	}

	sector := s.wheel.Draw()

	if _, err := s.prizes.Add(ctx, &domain.Prize{
		UserID: userID,
		Kind:   sector.Kind,
		Value:  sector.Value,
	}); err != nil {
		// The attempt is already spent and the draw stands; losing the audit
		// row is preferable to failing the spin.
		zap.L().Error("failed to record prize", zap.Int64("user_id", userID), zap.Error(err))
	}

	if bonus := sector.BonusAttempts(); bonus > 0 {
		attempts, err = s.ledger.Credit(ctx, userID, bonus)
		if err != nil {
			zap.L().Error("failed to credit bonus attempts", zap.Int64("user_id", userID), zap.Error(err))
			return nil, err
		}
	}

	return &Result{
		Prize:     sector,
		Remaining: attempts.Remaining(),
	}, nil
}

func (s *Service) Prizes(ctx context.Context, userID int64) ([]domain.Prize, error) {
	prizes, err := s.prizes.ListUnclaimed(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list prizes", zap.Error(err))
		return nil, err
	}
	return prizes, nil
}

func (s *Service) Claim(ctx context.Context, userID, prizeID int64) error {
	claimed, err := s.prizes.Claim(ctx, prizeID, userID)
	if err != nil {
		zap.L().Error("failed to claim prize", zap.Error(err))
		return err
	}
	if !claimed {
		return ErrPrizeNotFound
	}
	return nil
}
