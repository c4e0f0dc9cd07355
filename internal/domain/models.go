package domain

import "time"

type ProviderMode string

const (
	ModePolling ProviderMode = "polling"
	ModeWebhook ProviderMode = "webhook"
)

// MaxNumberUsage retires a pool number after this many delivered reservations.
const MaxNumberUsage = 3

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	IsBanned     bool      `db:"is_banned"`
	CreatedAt    time.Time `db:"created_at"`
}

type Service struct {
	ID       int     `db:"id"`
	Code     string  `db:"code"`
	Name     string  `db:"name"`
	Country  string  `db:"country"`
	Provider string  `db:"provider"`
	Price    float64 `db:"price"`
	Active   bool    `db:"active"`
}

type PoolNumber struct {
	ID         int       `db:"id"`
	Phone      string    `db:"phone"`
	ExternalID string    `db:"external_id"`
	ServiceID  int       `db:"service_id"`
	Provider   string    `db:"provider"`
	Country    string    `db:"country"`
	UsageCount int       `db:"usage_count"`
	Active     bool      `db:"active"`
	Deleted    bool      `db:"deleted"`
	CreatedAt  time.Time `db:"created_at"`
}

type Reservation struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	NumberID  int       `db:"number_id"`
	ServiceID int       `db:"service_id"`
	Price     float64   `db:"price"`
	Status    string    `db:"status"`
	Code      string    `db:"code"`
	CreatedAt time.Time `db:"created_at"`
	Deadline  time.Time `db:"deadline"`
}

type Transaction struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	Amount        float64   `db:"amount"`
	Kind          string    `db:"kind"`
	ReservationID *int      `db:"reservation_id"`
	CreatedAt     time.Time `db:"created_at"`
}
