// Package memoryrepo is the process-memory storage adapter. It implements the
// same repository contracts as the Postgres adapters with mutex-guarded maps,
// and is selected when no database DSN is configured.
package memoryrepo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rgalimov/fortuna/internal/domain"
)

type LedgerRepository struct {
	mu       sync.Mutex
	attempts map[int64]domain.Attempts
}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{attempts: make(map[int64]domain.Attempts)}
}

func (r *LedgerRepository) Get(_ context.Context, userID int64) (*domain.Attempts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	attempts, ok := r.attempts[userID]
	if !ok {
		return nil, nil
	}
	return &attempts, nil
}

func (r *LedgerRepository) Credit(_ context.Context, userID int64, attempts int) (*domain.Attempts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc := r.attempts[userID]
	acc.UserID = userID
	acc.Paid += attempts
	r.attempts[userID] = acc
	return &acc, nil
}

func (r *LedgerRepository) Consume(_ context.Context, userID int64, count int) (*domain.Attempts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.attempts[userID]
	if !ok || acc.Remaining() < count {
		return nil, nil
	}
	acc.Used += count
	r.attempts[userID] = acc
	return &acc, nil
}

type TransactionRepository struct {
	mu     sync.Mutex
	nextID int64
	txns   map[int64]domain.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{txns: make(map[int64]domain.Transaction)}
}

func (r *TransactionRepository) Create(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	now := time.Now()
	created := *txn
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.txns[created.ID] = created
	return &created, nil
}

func (r *TransactionRepository) GetByID(_ context.Context, id int64) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	txn, ok := r.txns[id]
	if !ok {
		return nil, nil
	}
	return &txn, nil
}

func (r *TransactionRepository) Finalize(_ context.Context, id int64, status domain.TransactionStatus, adminID int64) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	txn, ok := r.txns[id]
	if !ok || txn.Status != domain.StatusPending {
		return nil, nil
	}
	txn.Status = status
	txn.AdminID = &adminID
	txn.UpdatedAt = time.Now()
	r.txns[id] = txn
	return &txn, nil
}

func (r *TransactionRepository) AttachReceipt(_ context.Context, id, userID int64, receiptReference string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	txn, ok := r.txns[id]
	if !ok || txn.UserID != userID || txn.Status != domain.StatusPending {
		return nil, nil
	}
	txn.ReceiptReference = &receiptReference
	txn.UpdatedAt = time.Now()
	r.txns[id] = txn
	return &txn, nil
}

func (r *TransactionRepository) ListByUser(_ context.Context, userID int64) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var txns []domain.Transaction
	for _, txn := range r.txns {
		if txn.UserID == userID {
			txns = append(txns, txn)
		}
	}
	sort.Slice(txns, func(i, j int) bool { return txns[i].CreatedAt.After(txns[j].CreatedAt) })
	return txns, nil
}

func (r *TransactionRepository) ListPendingOlderThan(_ context.Context, cutoff time.Time) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var txns []domain.Transaction
	for _, txn := range r.txns {
		if txn.Status == domain.StatusPending && txn.CreatedAt.Before(cutoff) {
			txns = append(txns, txn)
		}
	}
	sort.Slice(txns, func(i, j int) bool { return txns[i].CreatedAt.Before(txns[j].CreatedAt) })
	return txns, nil
}

type PrizeRepository struct {
	mu     sync.Mutex
	nextID int64
	prizes map[int64]domain.Prize
}

func NewPrizeRepository() *PrizeRepository {
	return &PrizeRepository{prizes: make(map[int64]domain.Prize)}
}

func (r *PrizeRepository) Add(_ context.Context, prize *domain.Prize) (*domain.Prize, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *prize
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	r.prizes[created.ID] = created
	return &created, nil
}

func (r *PrizeRepository) ListUnclaimed(_ context.Context, userID int64) ([]domain.Prize, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var prizes []domain.Prize
	for _, prize := range r.prizes {
		if prize.UserID == userID && !prize.Claimed {
			prizes = append(prizes, prize)
		}
	}
	sort.Slice(prizes, func(i, j int) bool { return prizes[i].ID < prizes[j].ID })
	return prizes, nil
}

func (r *PrizeRepository) Claim(_ context.Context, id, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prize, ok := r.prizes[id]
	if !ok || prize.UserID != userID || prize.Claimed {
		return false, nil
	}
	prize.Claimed = true
	r.prizes[id] = prize
	return true, nil
}

type MethodRepository struct {
	mu      sync.Mutex
	nextID  int64
	methods map[int64]domain.PaymentMethod
}

func NewMethodRepository() *MethodRepository {
	return &MethodRepository{methods: make(map[int64]domain.PaymentMethod)}
}

func (r *MethodRepository) Create(_ context.Context, name, details string) (*domain.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, method := range r.methods {
		if strings.EqualFold(method.Name, name) {
			return nil, nil
		}
	}
	r.nextID++
	method := domain.PaymentMethod{ID: r.nextID, Name: name, Details: details, IsActive: true}
	r.methods[method.ID] = method
	return &method, nil
}

func (r *MethodRepository) Update(_ context.Context, id int64, name, details string) (*domain.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	method, ok := r.methods[id]
	if !ok {
		return nil, nil
	}
	method.Name = name
	method.Details = details
	r.methods[id] = method
	return &method, nil
}

func (r *MethodRepository) Toggle(_ context.Context, id int64) (*domain.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	method, ok := r.methods[id]
	if !ok {
		return nil, nil
	}
	method.IsActive = !method.IsActive
	r.methods[id] = method
	return &method, nil
}

func (r *MethodRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.methods[id]; !ok {
		return false, nil
	}
	delete(r.methods, id)
	return true, nil
}

func (r *MethodRepository) ListActive(_ context.Context) ([]domain.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var methods []domain.PaymentMethod
	for _, method := range r.methods {
		if method.IsActive {
			methods = append(methods, method)
		}
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i].ID < methods[j].ID })
	return methods, nil
}
