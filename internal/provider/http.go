package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/numbroker/numbroker/internal/config"
	"github.com/numbroker/numbroker/internal/domain"
	"github.com/numbroker/numbroker/pkg/clients"
)

// HTTPProvider talks the generic number-vendor HTTP protocol. Both polling
// and webhook vendors share it; webhook vendors just never get CheckCode
// calls.
type HTTPProvider struct {
	name         string
	addr         string
	apiKey       string
	mode         domain.ProviderMode
	pollInterval time.Duration
	client       clients.HTTPClientI
}

func NewHTTPProvider(cfg config.ProviderConfig) *HTTPProvider {
	return &HTTPProvider{
		name:         cfg.Name,
		addr:         cfg.Address,
		apiKey:       cfg.APIKey,
		mode:         domain.ProviderMode(cfg.Mode),
		pollInterval: cfg.PollInterval,
		client:       clients.NewHTTPClient(cfg.RequestTimeout),
	}
}

func (p *HTTPProvider) Name() string { return p.name }

func (p *HTTPProvider) Mode() domain.ProviderMode { return p.mode }

func (p *HTTPProvider) PollInterval() time.Duration { return p.pollInterval }

func (p *HTTPProvider) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+p.apiKey)
	h.Set("Content-Type", "application/json")
	return h
}

func (p *HTTPProvider) RequestNumber(ctx context.Context, service, country string) (*ExternalNumber, error) {
	body := fmt.Sprintf(`{"service":%q,"country":%q}`, service, country)
	statusCode, respBody, err := p.client.Post(ctx, p.addr+"/numbers", p.headers(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrProviderUnavailable, p.name, err)
	}

	switch statusCode {
	case http.StatusOK, http.StatusCreated:
		var number ExternalNumber
		if err := json.Unmarshal(respBody, &number); err != nil {
			return nil, fmt.Errorf("%w: %s: malformed response", domain.ErrProviderUnavailable, p.name)
		}
		return &number, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", domain.ErrAuthFailed, p.name)
	case http.StatusNotFound, http.StatusConflict:
		return nil, fmt.Errorf("%w: %s: %s/%s", domain.ErrNoStock, p.name, service, country)
	default:
		return nil, fmt.Errorf("%w: %s: unexpected status %d", domain.ErrProviderUnavailable, p.name, statusCode)
	}
}

func (p *HTTPProvider) CheckCode(ctx context.Context, externalID string) (string, error) {
	statusCode, respBody, err := p.client.Get(ctx, p.addr+"/numbers/"+externalID+"/code", p.headers())
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrProviderUnavailable, p.name, err)
	}

	switch statusCode {
	case http.StatusOK:
		var resp struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(respBody, &resp); err != nil {
			return "", fmt.Errorf("%w: %s: malformed response", domain.ErrProviderUnavailable, p.name)
		}
		return resp.Code, nil
	case http.StatusNoContent:
		// no code has arrived yet
		return "", nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", fmt.Errorf("%w: %s", domain.ErrAuthFailed, p.name)
	default:
		return "", fmt.Errorf("%w: %s: unexpected status %d", domain.ErrProviderUnavailable, p.name, statusCode)
	}
}

func (p *HTTPProvider) ReleaseNumber(ctx context.Context, externalID string) error {
	statusCode, _, err := p.client.Post(ctx, p.addr+"/numbers/"+externalID+"/release", p.headers(), "")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrProviderUnavailable, p.name, err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusNoContent {
		return fmt.Errorf("%w: %s: unexpected status %d", domain.ErrProviderUnavailable, p.name, statusCode)
	}
	return nil
}
