package ledgerrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/rgalimov/fortuna/internal/pg"
	"go.uber.org/zap"
)

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

func (r *Repository) Get(ctx context.Context, userID int64) (*domain.Attempts, error) {
	query := `
        SELECT user_id, paid, used
        FROM user_attempts
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var attempts domain.Attempts
	err := row.Scan(&attempts.UserID, &attempts.Paid, &attempts.Used)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user attempts", zap.Error(err))
		return nil, err
	}
	return &attempts, nil
}

// Credit adds attempts to the user's paid counter, creating the account row if absent.
func (r *Repository) Credit(ctx context.Context, userID int64, attempts int) (*domain.Attempts, error) {
	var updated domain.Attempts
	query := `
		INSERT INTO user_attempts (user_id, paid, used)
		VALUES ($1, $2, 0)
		ON CONFLICT (user_id) DO UPDATE SET paid = user_attempts.paid + $2
		RETURNING user_id, paid, used
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, userID, attempts)
		err := row.Scan(&updated.UserID, &updated.Paid, &updated.Used)
		if err != nil {
			zap.L().Error("failed to credit user attempts", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Consume spends count attempts if enough remain. The guard is part of the
// UPDATE predicate, so concurrent consumers cannot overspend a row.
// Returns nil without error when the remaining balance is too low.
func (r *Repository) Consume(ctx context.Context, userID int64, count int) (*domain.Attempts, error) {
	var updated domain.Attempts
	query := `
		UPDATE user_attempts
		SET used = used + $2
		WHERE user_id = $1 AND paid - used >= $2
		RETURNING user_id, paid, used
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, userID, count)
		err := row.Scan(&updated.UserID, &updated.Paid, &updated.Used)
		if err != nil {
			if err == pgx.ErrNoRows {
				return pgx.ErrNoRows
			}
			zap.L().Error("failed to consume user attempts", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}
