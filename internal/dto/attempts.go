package dto

type AttemptsResponseDTO struct {
	Paid      int `json:"paid" example:"5"`
	Used      int `json:"used" example:"2"`
	Remaining int `json:"remaining" example:"3"`
}
