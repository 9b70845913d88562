package service

import (
	"github.com/rgalimov/fortuna/internal/config"
	"github.com/rgalimov/fortuna/internal/repo"
	"github.com/rgalimov/fortuna/internal/service/approvalservice"
	"github.com/rgalimov/fortuna/internal/service/ledgerservice"
	"github.com/rgalimov/fortuna/internal/service/methodservice"
	"github.com/rgalimov/fortuna/internal/service/spinservice"
	"github.com/rgalimov/fortuna/internal/service/transactionservice"
)

type Services struct {
	LedgerService      *ledgerservice.Service
	TransactionService *transactionservice.Service
	ApprovalService    *approvalservice.Service
	SpinService        *spinservice.Service
	MethodService      *methodservice.Service
}

func New(repo *repo.Repositories, cfg *config.Config, notifier approvalservice.Notifier, drawer spinservice.Drawer) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo)
	transactionService := transactionservice.New(repo.TransactionRepo, cfg.MaxPaymentAmount)
	approvalService := approvalservice.New(transactionService, ledgerService, notifier, cfg)
	spinService := spinservice.New(ledgerService, repo.PrizeRepo, drawer)
	methodService := methodservice.New(repo.MethodRepo, cfg)

	return &Services{
		LedgerService:      ledgerService,
		TransactionService: transactionService,
		ApprovalService:    approvalService,
		SpinService:        spinService,
		MethodService:      methodService,
	}
}
