package dto

import "time"

type PurchaseRequestDTO struct {
	UserID   int64 `json:"user_id" example:"100500"`
	Amount   int   `json:"amount" example:"50"`
	Attempts int   `json:"attempts" example:"1"`
}

type PurchaseResponseDTO struct {
	TransactionID int64  `json:"transaction_id" example:"7"`
	Status        string `json:"status" example:"pending"`
}

type ReceiptRequestDTO struct {
	UserID           int64  `json:"user_id" example:"100500"`
	TransactionID    int64  `json:"transaction_id" example:"7"`
	ReceiptReference string `json:"receipt_reference" example:"file-abc123"`
}

type TransactionResponseDTO struct {
	ID        int64     `json:"id" example:"7"`
	Amount    int       `json:"amount" example:"50"`
	Attempts  int       `json:"attempts" example:"1"`
	Status    string    `json:"status" example:"completed"`
	CreatedAt time.Time `json:"created_at" example:"2025-03-01T16:09:57+03:00"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-03-01T16:19:57+03:00"`
}

type PaymentMethodResponseDTO struct {
	ID      int64  `json:"id" example:"1"`
	Name    string `json:"name" example:"SBP"`
	Details string `json:"details" example:"phone +7 900 000-00-00"`
}
