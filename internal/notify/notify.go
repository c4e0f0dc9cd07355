package notify

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event is emitted after every terminal reservation transition, outside the
// transactional boundary: a failed notification never rolls the transition
// back.
type Event struct {
	ID            uuid.UUID `json:"id"`
	ReservationID int       `json:"reservation_id"`
	UserID        int       `json:"user_id"`
	Status        string    `json:"status"`
	Code          string    `json:"code,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// LogNotifier ships events to the log; the conversational front-end consumes
// them out of process.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, event Event) {
	zap.L().Info("reservation event",
		zap.String("event_id", event.ID.String()),
		zap.Int("reservation_id", event.ReservationID),
		zap.Int("user_id", event.UserID),
		zap.String("status", event.Status),
		zap.String("code", event.Code),
	)
}

// NewEvent assigns the event identity.
func NewEvent(reservationID, userID int, status, code string) Event {
	return Event{
		ID:            uuid.New(),
		ReservationID: reservationID,
		UserID:        userID,
		Status:        status,
		Code:          code,
	}
}
