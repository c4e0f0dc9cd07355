package provider

import (
	"context"
	"time"

	"github.com/numbroker/numbroker/internal/domain"
)

// ExternalNumber is a number leased from an upstream provider.
type ExternalNumber struct {
	ID    string `json:"id"`
	Phone string `json:"phone"`
}

// Client is the capability set every provider variant implements. Retry
// policy belongs to the caller; a request timeout surfaces as
// domain.ErrProviderUnavailable.
type Client interface {
	Name() string
	Mode() domain.ProviderMode
	// PollInterval is the minimum pause between poll rounds against this
	// provider; zero means every sweep.
	PollInterval() time.Duration
	RequestNumber(ctx context.Context, service, country string) (*ExternalNumber, error)
	// CheckCode returns the received code, or "" while none has arrived.
	// Meaningful only for polling-mode providers.
	CheckCode(ctx context.Context, externalID string) (string, error)
	// ReleaseNumber is a best-effort cancellation notice; the local record
	// stays authoritative on failure.
	ReleaseNumber(ctx context.Context, externalID string) error
}
