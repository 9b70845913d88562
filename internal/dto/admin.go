package dto

type DecisionRequestDTO struct {
	AdminID int64 `json:"admin_id" example:"42"`
}

type MethodCreateRequestDTO struct {
	AdminID int64  `json:"admin_id" example:"42"`
	Name    string `json:"name" example:"SBP"`
	Details string `json:"details" example:"phone +7 900 000-00-00"`
}

type MethodUpdateRequestDTO struct {
	AdminID int64  `json:"admin_id" example:"42"`
	Name    string `json:"name" example:"SBP"`
	Details string `json:"details" example:"phone +7 900 000-00-01"`
}
