package methodservice

import (
	"context"
	"errors"

	"github.com/rgalimov/fortuna/internal/config"
	"github.com/rgalimov/fortuna/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=methodservice.go -destination=mock_methodservice.go -package=methodservice

type Repo interface {
	Create(ctx context.Context, name, details string) (*domain.PaymentMethod, error)
	Update(ctx context.Context, id int64, name, details string) (*domain.PaymentMethod, error)
	Toggle(ctx context.Context, id int64) (*domain.PaymentMethod, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListActive(ctx context.Context) ([]domain.PaymentMethod, error)
}

var (
	ErrNotAdmin       = errors.New("caller is not an administrator")
	ErrInvalidMethod  = errors.New("payment method name and details must not be empty")
	ErrMethodExists   = errors.New("payment method already exists")
	ErrMethodNotFound = errors.New("payment method not found")
)

type Service struct {
	repo Repo
	cfg  *config.Config
}

func New(repo Repo, cfg *config.Config) *Service {
	return &Service{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *Service) Add(ctx context.Context, adminID int64, name, details string) (*domain.PaymentMethod, error) {
	if !s.cfg.IsAdmin(adminID) {
		return nil, ErrNotAdmin
	}
	if name == "" || details == "" {
		return nil, ErrInvalidMethod
	}
	method, err := s.repo.Create(ctx, name, details)
	if err != nil {
		zap.L().Error("failed to add payment method", zap.Error(err))
		return nil, err
	}
	if method == nil {
		return nil, ErrMethodExists
	}
	return method, nil
}

func (s *Service) Update(ctx context.Context, adminID, id int64, name, details string) (*domain.PaymentMethod, error) {
	if !s.cfg.IsAdmin(adminID) {
		return nil, ErrNotAdmin
	}
	if name == "" || details == "" {
		return nil, ErrInvalidMethod
	}
	method, err := s.repo.Update(ctx, id, name, details)
	if err != nil {
		zap.L().Error("failed to update payment method", zap.Error(err))
		return nil, err
	}
	if method == nil {
		return nil, ErrMethodNotFound
	}
	return method, nil
}

func (s *Service) Toggle(ctx context.Context, adminID, id int64) (*domain.PaymentMethod, error) {
	if !s.cfg.IsAdmin(adminID) {
		return nil, ErrNotAdmin
	}
	method, err := s.repo.Toggle(ctx, id)
	if err != nil {
		zap.L().Error("failed to toggle payment method", zap.Error(err))
		return nil, err
	}
	if method == nil {
		return nil, ErrMethodNotFound
	}
	return method, nil
}

func (s *Service) Delete(ctx context.Context, adminID, id int64) error {
	if !s.cfg.IsAdmin(adminID) {
		return ErrNotAdmin
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete payment method", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrMethodNotFound
	}
	return nil
}

func (s *Service) ListActive(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.repo.ListActive(ctx)
	if err != nil {
		zap.L().Error("failed to list payment methods", zap.Error(err))
		return nil, err
	}
	return methods, nil
}
