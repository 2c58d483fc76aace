// Package randomized provides a decision provider that picks a uniformly
// random action with random parameters. It makes no attempt to play well;
// it exists to exercise the whole action surface during soak matches.
package randomized

import (
	"context"
	"math/rand"
	"sort"
	"strconv"
	"sync"

	"harvestduel/internal/app/ports"
	"harvestduel/internal/domain/farming"
)

var maintenanceKinds = []string{
	string(farming.MaintainWater),
	string(farming.MaintainWeed),
	string(farming.MaintainFertilize),
}

var marketTypes = []string{
	string(farming.MarketLocal),
	string(farming.MarketGlobal),
}

// Provider draws all randomness from its own source so two providers built
// with the same seed produce the same action stream.
type Provider struct {
	mu    sync.Mutex
	rng   *rand.Rand
	rules *farming.Rules
}

func New(rules *farming.Rules, seed int64) *Provider {
	return &Provider{
		rng:   rand.New(rand.NewSource(seed)),
		rules: rules,
	}
}

var _ ports.DecisionProvider = (*Provider)(nil)

func (p *Provider) Decide(_ context.Context, view ports.PlayerView) (farming.ActionRequest, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	plots := len(view.Plots)
	if plots == 0 {
		plots = 1
	}
	plot := strconv.Itoa(1 + p.rng.Intn(plots))
	crops := p.rules.CropKinds()
	crop := string(crops[p.rng.Intn(len(crops))])

	switch p.rng.Intn(6) {
	case 0:
		return farming.ActionRequest{Name: string(farming.ActionPlant), Parameters: []string{crop, plot}}, nil
	case 1:
		return farming.ActionRequest{Name: string(farming.ActionHarvest), Parameters: []string{plot}}, nil
	case 2:
		kind := maintenanceKinds[p.rng.Intn(len(maintenanceKinds))]
		return farming.ActionRequest{Name: string(farming.ActionMaintenance), Parameters: []string{kind, plot}}, nil
	case 3:
		amount := strconv.Itoa(1 + p.rng.Intn(10))
		market := marketTypes[p.rng.Intn(len(marketTypes))]
		return farming.ActionRequest{Name: string(farming.ActionSell), Parameters: []string{crop, amount, market}}, nil
	case 4:
		items := p.buyableItems()
		return farming.ActionRequest{Name: string(farming.ActionBuy), Parameters: []string{items[p.rng.Intn(len(items))]}}, nil
	default:
		coops := p.cooperativeIDs()
		return farming.ActionRequest{Name: string(farming.ActionBuyCooperative), Parameters: []string{coops[p.rng.Intn(len(coops))]}}, nil
	}
}

func (p *Provider) buyableItems() []string {
	items := make([]string, 0, len(p.rules.Upgrades)+1)
	for id := range p.rules.Upgrades {
		items = append(items, id)
	}
	// Sorted so map iteration order never reaches the random stream.
	sort.Strings(items)
	return append(items, "plot")
}

func (p *Provider) cooperativeIDs() []string {
	ids := make([]string, 0, len(p.rules.CooperativeUpgrades))
	for id := range p.rules.CooperativeUpgrades {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
