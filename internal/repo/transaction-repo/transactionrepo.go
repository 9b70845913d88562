package transactionrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/rgalimov/fortuna/internal/pg"
	"go.uber.org/zap"
)

const transactionColumns = "id, user_id, amount, attempts, status, receipt_reference, admin_id, created_at, updated_at"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.ID, &txn.UserID, &txn.Amount, &txn.Attempts, &txn.Status,
		&txn.ReceiptReference, &txn.AdminID, &txn.CreatedAt, &txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (user_id, amount, attempts, status)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + transactionColumns
	created, err := scanTransaction(r.db.QueryRow(ctx, query, txn.UserID, txn.Amount, txn.Attempts, txn.Status))
	if err != nil {
		zap.L().Error("failed to create transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE id = $1
    `
	txn, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

// Finalize moves a pending transaction to a terminal status. The status guard in
// the WHERE clause makes the pending->terminal transition a compare-and-swap:
// of two concurrent calls only one sees an affected row. Returns nil without
// error when no pending row matched.
func (r *Repository) Finalize(ctx context.Context, id int64, status domain.TransactionStatus, adminID int64) (*domain.Transaction, error) {
	var finalized *domain.Transaction
	query := `
		UPDATE transactions
		SET status = $2, admin_id = $3, updated_at = now()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + transactionColumns
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		txn, err := scanTransaction(r.db.QueryRow(ctx, query, id, status, adminID))
		if err != nil {
			if err == pgx.ErrNoRows {
				return pgx.ErrNoRows
			}
			zap.L().Error("failed to finalize transaction", zap.Error(err))
			return err
		}
		finalized = txn
		return nil
	})

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return finalized, nil
}

// AttachReceipt stores the receipt reference on a pending transaction owned by
// userID. Returns nil without error when no such pending row exists.
func (r *Repository) AttachReceipt(ctx context.Context, id, userID int64, receiptReference string) (*domain.Transaction, error) {
	query := `
		UPDATE transactions
		SET receipt_reference = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2 AND status = 'pending'
		RETURNING ` + transactionColumns
	txn, err := scanTransaction(r.db.QueryRow(ctx, query, id, userID, receiptReference))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to attach receipt", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list user transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *Repository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE status = 'pending' AND created_at < $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		zap.L().Error("failed to list pending transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(
			&txn.ID, &txn.UserID, &txn.Amount, &txn.Attempts, &txn.Status,
			&txn.ReceiptReference, &txn.AdminID, &txn.CreatedAt, &txn.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return txns, nil
}
