// Package scripted provides a decision provider that replays a fixed
// sequence of actions. Useful for regression matches and demos.
package scripted

import (
	"context"
	"sync"

	"harvestduel/internal/app/ports"
	"harvestduel/internal/domain/farming"
)

// Provider plays back its actions in order. Once the script is exhausted it
// keeps returning Rest so the match can run to completion.
type Provider struct {
	mu      sync.Mutex
	actions []farming.ActionRequest
	next    int
}

func New(actions []farming.ActionRequest) *Provider {
	return &Provider{actions: actions}
}

var _ ports.DecisionProvider = (*Provider)(nil)

func (p *Provider) Decide(_ context.Context, _ ports.PlayerView) (farming.ActionRequest, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.next >= len(p.actions) {
		return farming.ActionRequest{Name: string(farming.ActionRest)}, nil
	}
	req := p.actions[p.next]
	p.next++
	return req, nil
}
