package dto

import "time"

type SpinRequestDTO struct {
	UserID int64 `json:"user_id" example:"100500"`
}

type SpinResponseDTO struct {
	Segment   string `json:"segment" example:"⭐"`
	Prize     string `json:"prize" example:"5 free attempts"`
	Kind      string `json:"kind" example:"attempt"`
	Value     string `json:"value" example:"5"`
	Remaining int    `json:"remaining" example:"4"`
}

type PrizeResponseDTO struct {
	ID        int64     `json:"id" example:"1"`
	Kind      string    `json:"kind" example:"money"`
	Value     string    `json:"value" example:"100"`
	CreatedAt time.Time `json:"created_at" example:"2025-03-01T16:09:57+03:00"`
}

type ClaimRequestDTO struct {
	UserID  int64 `json:"user_id" example:"100500"`
	PrizeID int64 `json:"prize_id" example:"1"`
}
