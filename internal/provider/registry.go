package provider

import (
	"fmt"

	"github.com/numbroker/numbroker/internal/config"
)

// Registry resolves provider names to clients; built once at startup, the
// reservation manager and scheduler only see the Client interface.
type Registry struct {
	clients map[string]Client
}

func NewRegistry(cfgs []config.ProviderConfig) *Registry {
	clients := make(map[string]Client, len(cfgs))
	for _, cfg := range cfgs {
		clients[cfg.Name] = NewHTTPProvider(cfg)
	}
	return &Registry{clients: clients}
}

func (r *Registry) Get(name string) (Client, error) {
	client, ok := r.clients[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
	return client, nil
}
