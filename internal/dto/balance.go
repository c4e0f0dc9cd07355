package dto

import "time"

type BalanceResponseDTO struct {
	Current float64 `json:"current" example:"70.5"`
}

type TransactionResponseDTO struct {
	ID            int       `json:"id" example:"12"`
	Amount        float64   `json:"amount" example:"-30"`
	Kind          string    `json:"kind" example:"PURCHASE"`
	ReservationID *int      `json:"reservation_id,omitempty" example:"7"`
	CreatedAt     time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
