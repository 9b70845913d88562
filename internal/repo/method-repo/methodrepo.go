package methodrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/rgalimov/fortuna/internal/pg"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Create inserts a payment method. Returns nil without error when a method with
// the same name already exists.
func (r *Repository) Create(ctx context.Context, name, details string) (*domain.PaymentMethod, error) {
	query := `
        INSERT INTO payment_methods (name, details)
        VALUES ($1, $2)
        RETURNING id, name, details, is_active
    `
	row := r.db.QueryRow(ctx, query, name, details)
	var method domain.PaymentMethod
	err := row.Scan(&method.ID, &method.Name, &method.Details, &method.IsActive)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, nil
		}
		zap.L().Error("failed to create payment method", zap.Error(err))
		return nil, err
	}
	return &method, nil
}

func (r *Repository) Update(ctx context.Context, id int64, name, details string) (*domain.PaymentMethod, error) {
	query := `
        UPDATE payment_methods
        SET name = $2, details = $3
        WHERE id = $1
        RETURNING id, name, details, is_active
    `
	row := r.db.QueryRow(ctx, query, id, name, details)
	var method domain.PaymentMethod
	err := row.Scan(&method.ID, &method.Name, &method.Details, &method.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to update payment method", zap.Error(err))
		return nil, err
	}
	return &method, nil
}

func (r *Repository) Toggle(ctx context.Context, id int64) (*domain.PaymentMethod, error) {
	query := `
        UPDATE payment_methods
        SET is_active = NOT is_active
        WHERE id = $1
        RETURNING id, name, details, is_active
    `
	row := r.db.QueryRow(ctx, query, id)
	var method domain.PaymentMethod
	err := row.Scan(&method.ID, &method.Name, &method.Details, &method.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to toggle payment method", zap.Error(err))
		return nil, err
	}
	return &method, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to delete payment method", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListActive(ctx context.Context) ([]domain.PaymentMethod, error) {
	query := `
        SELECT id, name, details, is_active
        FROM payment_methods
        WHERE is_active = TRUE
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list payment methods", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var methods []domain.PaymentMethod
	for rows.Next() {
		var method domain.PaymentMethod
		err := rows.Scan(&method.ID, &method.Name, &method.Details, &method.IsActive)
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return methods, nil
}
