package repo

import (
	"github.com/rgalimov/fortuna/internal/pg"
	ledgerrepo "github.com/rgalimov/fortuna/internal/repo/ledger-repo"
	memoryrepo "github.com/rgalimov/fortuna/internal/repo/memory"
	methodrepo "github.com/rgalimov/fortuna/internal/repo/method-repo"
	prizerepo "github.com/rgalimov/fortuna/internal/repo/prize-repo"
	transactionrepo "github.com/rgalimov/fortuna/internal/repo/transaction-repo"
	"github.com/rgalimov/fortuna/internal/service/ledgerservice"
	"github.com/rgalimov/fortuna/internal/service/methodservice"
	"github.com/rgalimov/fortuna/internal/service/spinservice"
	"github.com/rgalimov/fortuna/internal/service/transactionservice"
)

type Repositories struct {
	LedgerRepo      ledgerservice.Repo
	TransactionRepo transactionservice.Repo
	PrizeRepo       spinservice.PrizeRepo
	MethodRepo      methodservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		LedgerRepo:      ledgerrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn, txManager),
		PrizeRepo:       prizerepo.New(conn),
		MethodRepo:      methodrepo.New(conn),
	}
}

// NewMemory builds the process-memory adapter set, used when no database DSN
// is configured and by tests.
func NewMemory() *Repositories {
	return &Repositories{
		LedgerRepo:      memoryrepo.NewLedgerRepository(),
		TransactionRepo: memoryrepo.NewTransactionRepository(),
		PrizeRepo:       memoryrepo.NewPrizeRepository(),
		MethodRepo:      memoryrepo.NewMethodRepository(),
	}
}
