package domain

import "time"

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusDeclined  TransactionStatus = "declined"
)

type PrizeKind string

const (
	PrizeMoney    PrizeKind = "money"
	PrizeAttempt  PrizeKind = "attempt"
	PrizeDiscount PrizeKind = "discount"
	PrizeOther    PrizeKind = "other"
)

// Attempts is the per-user spin ledger. Used never exceeds Paid.
type Attempts struct {
	UserID int64 `db:"user_id"`
	Paid   int   `db:"paid"`
	Used   int   `db:"used"`
}

func (a Attempts) Remaining() int {
	return a.Paid - a.Used
}

type Transaction struct {
	ID               int64             `db:"id"`
	UserID           int64             `db:"user_id"`
	Amount           int               `db:"amount"`
	Attempts         int               `db:"attempts"`
	Status           TransactionStatus `db:"status"`
	ReceiptReference *string           `db:"receipt_reference"`
	AdminID          *int64            `db:"admin_id"`
	CreatedAt        time.Time         `db:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at"`
}

type Prize struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Kind      PrizeKind `db:"kind"`
	Value     string    `db:"value"`
	Claimed   bool      `db:"claimed"`
	CreatedAt time.Time `db:"created_at"`
}

type PaymentMethod struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Details  string `db:"details"`
	IsActive bool   `db:"is_active"`
}
