package prizerepo

import (
	"context"

	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/rgalimov/fortuna/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Add(ctx context.Context, prize *domain.Prize) (*domain.Prize, error) {
	query := `
        INSERT INTO prizes (user_id, kind, value)
        VALUES ($1, $2, $3)
        RETURNING id, user_id, kind, value, claimed, created_at
    `
	row := r.db.QueryRow(ctx, query, prize.UserID, prize.Kind, prize.Value)
	var created domain.Prize
	err := row.Scan(&created.ID, &created.UserID, &created.Kind, &created.Value, &created.Claimed, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to add prize", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) ListUnclaimed(ctx context.Context, userID int64) ([]domain.Prize, error) {
	query := `
        SELECT id, user_id, kind, value, claimed, created_at
        FROM prizes
        WHERE user_id = $1 AND claimed = FALSE
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list unclaimed prizes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var prizes []domain.Prize
	for rows.Next() {
		var prize domain.Prize
		err := rows.Scan(&prize.ID, &prize.UserID, &prize.Kind, &prize.Value, &prize.Claimed, &prize.CreatedAt)
		if err != nil {
			return nil, err
		}
		prizes = append(prizes, prize)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return prizes, nil
}

// Claim marks a prize as claimed. Reports false when the prize does not exist,
// belongs to another user or was already claimed.
func (r *Repository) Claim(ctx context.Context, id, userID int64) (bool, error) {
	query := `
        UPDATE prizes
        SET claimed = TRUE
        WHERE id = $1 AND user_id = $2 AND claimed = FALSE
    `
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		zap.L().Error("failed to claim prize", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
