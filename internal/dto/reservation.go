package dto

import "time"

type OpenReservationRequestDTO struct {
	ServiceID int `json:"service_id" example:"3"`
}

type ReservationResponseDTO struct {
	ID        int       `json:"id" example:"7"`
	ServiceID int       `json:"service_id" example:"3"`
	Phone     string    `json:"phone,omitempty" example:"+79161234567"`
	Status    string    `json:"status" example:"PENDING"`
	Code      string    `json:"code,omitempty" example:"4821"`
	Price     float64   `json:"price" example:"30"`
	CreatedAt time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
	Deadline  time.Time `json:"deadline" example:"2020-12-09T16:19:57+03:00"`
}

type ServiceResponseDTO struct {
	ID       int     `json:"id" example:"3"`
	Code     string  `json:"code" example:"tg"`
	Name     string  `json:"name" example:"Telegram"`
	Country  string  `json:"country" example:"RU"`
	Provider string  `json:"provider" example:"smspool"`
	Price    float64 `json:"price" example:"30"`
}

type WebhookDeliverRequestDTO struct {
	ExternalNumberID string `json:"external_number_id" example:"ext-42"`
	Code             string `json:"code" example:"4821"`
}
