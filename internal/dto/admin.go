package dto

type AdjustBalanceRequestDTO struct {
	UserID int     `json:"user_id" example:"1"`
	Amount float64 `json:"amount" example:"100"`
	Kind   string  `json:"kind" example:"REWARD"`
}

type BanUserRequestDTO struct {
	Banned bool `json:"banned" example:"true"`
}
