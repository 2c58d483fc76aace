package farming

import (
	"fmt"
	"math"
	"sort"
)

type CropKind string

type Season string

type Weather string

type MarketType string

type MaintenanceKind string

const (
	MarketLocal  MarketType = "local"
	MarketGlobal MarketType = "global"
)

const (
	MaintainWater     MaintenanceKind = "water"
	MaintainWeed      MaintenanceKind = "weed"
	MaintainFertilize MaintenanceKind = "fertilize"
)

// CropRule is the per-crop economics row of the rule table.
type CropRule struct {
	Cost           int     `json:"cost" yaml:"cost"`
	BaseGrowthTime int     `json:"base_growth_time" yaml:"base_growth_time"`
	BaseYield      int     `json:"base_yield" yaml:"base_yield"`
	BasePrice      int     `json:"base_price" yaml:"base_price"`
	Hardiness      float64 `json:"hardiness" yaml:"hardiness"`
}

// WeatherEffect scales growth, harvest yield, and energy spend for a day.
type WeatherEffect struct {
	Growth float64 `json:"growth" yaml:"growth"`
	Yield  float64 `json:"yield" yaml:"yield"`
	Energy float64 `json:"energy" yaml:"energy"`
}

type SoilRules struct {
	DepletionRate          float64 `json:"depletion_rate" yaml:"depletion_rate"`
	MaintenanceImprovement float64 `json:"maintenance_improvement" yaml:"maintenance_improvement"`
	YieldFactor            float64 `json:"yield_factor" yaml:"yield_factor"`
}

type MarketRules struct {
	LocalPriceFactor    float64 `json:"local_price_factor" yaml:"local_price_factor"`
	GlobalPriceFactor   float64 `json:"global_price_factor" yaml:"global_price_factor"`
	MaxPriceFluctuation float64 `json:"max_price_fluctuation" yaml:"max_price_fluctuation"`
	TrendDays           int     `json:"trend_days" yaml:"trend_days"`
}

// UpgradeRule describes one catalog entry. Effect fields are additive across
// owned upgrades; a zero field means the upgrade carries no such effect.
type UpgradeRule struct {
	Cost              int     `json:"cost" yaml:"cost"`
	WaterSaving       float64 `json:"water_saving,omitempty" yaml:"water_saving"`
	WeatherProtection float64 `json:"weather_protection,omitempty" yaml:"weather_protection"`
	YieldBoost        float64 `json:"yield_boost,omitempty" yaml:"yield_boost"`
	EnergySaving      float64 `json:"energy_saving,omitempty" yaml:"energy_saving"`
}

type PlotPurchaseRules struct {
	BaseCost         int     `json:"base_cost" yaml:"base_cost"`
	CostGrowthFactor float64 `json:"cost_growth_factor" yaml:"cost_growth_factor"`
}

// Rules is the static rule table consulted read-only by every component.
// It is loaded once at startup; Validate is the only place configuration
// problems are allowed to surface, and they are fatal there.
type Rules struct {
	TotalDays         int `json:"total_days" yaml:"total_days"`
	StartingMoney     int `json:"starting_money" yaml:"starting_money"`
	MaxEnergy         int `json:"max_energy" yaml:"max_energy"`
	EnergyRegenPerDay int `json:"energy_regen_per_day" yaml:"energy_regen_per_day"`

	Seasons              []Season             `json:"seasons" yaml:"seasons"`
	SeasonLengthDays     int                  `json:"season_length_days" yaml:"season_length_days"`
	WeatherTypes         []Weather            `json:"weather_types" yaml:"weather_types"`
	WeatherProbabilities map[Season][]float64 `json:"weather_probabilities" yaml:"weather_probabilities"`
	WeatherEffects       map[Weather]WeatherEffect `json:"weather_effects" yaml:"weather_effects"`

	Crops         map[CropKind]CropRule       `json:"crops" yaml:"crops"`
	PlantEnergy   map[CropKind]int            `json:"plant_energy" yaml:"plant_energy"`
	HarvestEnergy map[CropKind]int            `json:"harvest_energy" yaml:"harvest_energy"`
	MaintainEnergy map[MaintenanceKind]int    `json:"maintenance_energy" yaml:"maintenance_energy"`
	TradeEnergy   map[MarketType]int          `json:"trade_energy" yaml:"trade_energy"`

	Soil   SoilRules   `json:"soil" yaml:"soil"`
	Market MarketRules `json:"market" yaml:"market"`

	Upgrades            map[string]UpgradeRule `json:"upgrades" yaml:"upgrades"`
	CooperativeUpgrades map[string]UpgradeRule `json:"cooperative_upgrades" yaml:"cooperative_upgrades"`

	PlotPurchase PlotPurchaseRules `json:"plot_purchase" yaml:"plot_purchase"`

	ActionLogDisplayCount int `json:"action_log_display_count" yaml:"action_log_display_count"`
}

// DefaultRules returns the stock two-player economy: four 30-day seasons,
// five crops, four weather types, and the standard upgrade catalogs.
func DefaultRules() *Rules {
	return &Rules{
		TotalDays:         120,
		StartingMoney:     1000,
		MaxEnergy:         100,
		EnergyRegenPerDay: 20,

		Seasons:          []Season{"Spring", "Summer", "Fall", "Winter"},
		SeasonLengthDays: 30,
		WeatherTypes:     []Weather{"Sunny", "Rainy", "Drought", "Storm"},
		WeatherProbabilities: map[Season][]float64{
			"Spring": {0.5, 0.3, 0.1, 0.1},
			"Summer": {0.6, 0.1, 0.2, 0.1},
			"Fall":   {0.4, 0.4, 0.1, 0.1},
			"Winter": {0.3, 0.3, 0.1, 0.3},
		},
		WeatherEffects: map[Weather]WeatherEffect{
			"Sunny":   {Growth: 1.0, Yield: 1.1, Energy: 1.0},
			"Rainy":   {Growth: 1.2, Yield: 1.0, Energy: 1.2},
			"Drought": {Growth: 0.8, Yield: 0.7, Energy: 1.5},
			"Storm":   {Growth: 0.5, Yield: 0.8, Energy: 1.3},
		},

		Crops: map[CropKind]CropRule{
			"Wheat":      {Cost: 10, BaseGrowthTime: 7, BaseYield: 5, BasePrice: 30, Hardiness: 0.8},
			"Corn":       {Cost: 15, BaseGrowthTime: 10, BaseYield: 8, BasePrice: 25, Hardiness: 0.6},
			"Tomato":     {Cost: 20, BaseGrowthTime: 6, BaseYield: 6, BasePrice: 45, Hardiness: 0.5},
			"Potato":     {Cost: 12, BaseGrowthTime: 8, BaseYield: 7, BasePrice: 35, Hardiness: 0.9},
			"Strawberry": {Cost: 30, BaseGrowthTime: 5, BaseYield: 4, BasePrice: 75, Hardiness: 0.4},
		},
		PlantEnergy: map[CropKind]int{
			"Wheat": 10, "Corn": 15, "Tomato": 12, "Potato": 8, "Strawberry": 20,
		},
		HarvestEnergy: map[CropKind]int{
			"Wheat": 15, "Corn": 20, "Tomato": 18, "Potato": 12, "Strawberry": 25,
		},
		MaintainEnergy: map[MaintenanceKind]int{
			MaintainWater: 5, MaintainWeed: 10, MaintainFertilize: 15,
		},
		TradeEnergy: map[MarketType]int{
			MarketLocal: 5, MarketGlobal: 10,
		},

		Soil: SoilRules{
			DepletionRate:          0.1,
			MaintenanceImprovement: 0.2,
			YieldFactor:            0.5,
		},
		Market: MarketRules{
			LocalPriceFactor:    1.1,
			GlobalPriceFactor:   1.3,
			MaxPriceFluctuation: 0.2,
			TrendDays:           7,
		},

		Upgrades: map[string]UpgradeRule{
			"Irrigation": {Cost: 500, WaterSaving: 0.2},
			"Greenhouse": {Cost: 1000, WeatherProtection: 0.5},
			"Fertilizer": {Cost: 300, YieldBoost: 0.2},
			"Automation": {Cost: 800, EnergySaving: 0.15},
		},
		CooperativeUpgrades: map[string]UpgradeRule{
			"Irrigation Network": {Cost: 2000, WaterSaving: 0.3},
			"Shared Greenhouse":  {Cost: 3000, WeatherProtection: 0.7},
		},

		PlotPurchase: PlotPurchaseRules{
			BaseCost:         500,
			CostGrowthFactor: 1.5,
		},

		ActionLogDisplayCount: 10,
	}
}

// CropKinds returns every crop kind in a stable order. Map iteration order
// must never feed the RNG or the snapshot output.
func (r *Rules) CropKinds() []CropKind {
	kinds := make([]CropKind, 0, len(r.Crops))
	for k := range r.Crops {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// UpgradeRule looks up an upgrade id in the individual catalog first, then
// the cooperative one.
func (r *Rules) UpgradeRule(id string) (UpgradeRule, bool) {
	if u, ok := r.Upgrades[id]; ok {
		return u, true
	}
	u, ok := r.CooperativeUpgrades[id]
	return u, ok
}

// PlotCost prices the next plot given how many the player already owns.
func (r *Rules) PlotCost(ownedPlots int) int {
	return int(math.Floor(float64(r.PlotPurchase.BaseCost) * math.Pow(r.PlotPurchase.CostGrowthFactor, float64(ownedPlots))))
}

// Validate reports the first structural problem in the rule table. A non-nil
// error means the process must not start.
func (r *Rules) Validate() error {
	if r.TotalDays <= 0 {
		return fmt.Errorf("rules: total_days must be positive, got %d", r.TotalDays)
	}
	if r.StartingMoney < 0 {
		return fmt.Errorf("rules: starting_money must not be negative, got %d", r.StartingMoney)
	}
	if r.MaxEnergy <= 0 || r.EnergyRegenPerDay < 0 {
		return fmt.Errorf("rules: max_energy/energy_regen_per_day out of range (%d, %d)", r.MaxEnergy, r.EnergyRegenPerDay)
	}
	if len(r.Seasons) == 0 {
		return fmt.Errorf("rules: at least one season is required")
	}
	if r.SeasonLengthDays <= 0 {
		return fmt.Errorf("rules: season_length_days must be positive, got %d", r.SeasonLengthDays)
	}
	if len(r.WeatherTypes) == 0 {
		return fmt.Errorf("rules: at least one weather type is required")
	}
	for _, season := range r.Seasons {
		probs, ok := r.WeatherProbabilities[season]
		if !ok {
			return fmt.Errorf("rules: season %q has no weather probabilities", season)
		}
		if len(probs) != len(r.WeatherTypes) {
			return fmt.Errorf("rules: season %q has %d weather probabilities, want %d", season, len(probs), len(r.WeatherTypes))
		}
		sum := 0.0
		for _, p := range probs {
			if p < 0 {
				return fmt.Errorf("rules: season %q has a negative weather probability", season)
			}
			sum += p
		}
		if math.Abs(sum-1.0) > 1e-6 {
			return fmt.Errorf("rules: season %q weather probabilities sum to %v, want 1", season, sum)
		}
	}
	for _, w := range r.WeatherTypes {
		if _, ok := r.WeatherEffects[w]; !ok {
			return fmt.Errorf("rules: weather %q has no effect entry", w)
		}
	}
	if len(r.Crops) == 0 {
		return fmt.Errorf("rules: at least one crop is required")
	}
	for kind, crop := range r.Crops {
		if crop.Cost < 0 || crop.BaseGrowthTime <= 0 || crop.BaseYield < 0 || crop.BasePrice < 0 {
			return fmt.Errorf("rules: crop %q has out-of-range economics", kind)
		}
		if _, ok := r.PlantEnergy[kind]; !ok {
			return fmt.Errorf("rules: crop %q has no plant energy cost", kind)
		}
		if _, ok := r.HarvestEnergy[kind]; !ok {
			return fmt.Errorf("rules: crop %q has no harvest energy cost", kind)
		}
	}
	for _, kind := range []MaintenanceKind{MaintainWater, MaintainWeed, MaintainFertilize} {
		if _, ok := r.MaintainEnergy[kind]; !ok {
			return fmt.Errorf("rules: maintenance kind %q has no energy cost", kind)
		}
	}
	for _, mt := range []MarketType{MarketLocal, MarketGlobal} {
		if _, ok := r.TradeEnergy[mt]; !ok {
			return fmt.Errorf("rules: market type %q has no trade energy cost", mt)
		}
	}
	if r.Market.LocalPriceFactor <= 0 || r.Market.GlobalPriceFactor <= 0 {
		return fmt.Errorf("rules: market price factors must be positive")
	}
	if r.Market.TrendDays <= 0 {
		return fmt.Errorf("rules: market trend_days must be positive, got %d", r.Market.TrendDays)
	}
	if r.Soil.DepletionRate < 0 || r.Soil.MaintenanceImprovement < 0 {
		return fmt.Errorf("rules: soil rates must not be negative")
	}
	for id, u := range r.Upgrades {
		if u.Cost <= 0 {
			return fmt.Errorf("rules: upgrade %q must have a positive cost", id)
		}
		if _, dup := r.CooperativeUpgrades[id]; dup {
			return fmt.Errorf("rules: upgrade %q appears in both catalogs", id)
		}
	}
	for id, u := range r.CooperativeUpgrades {
		if u.Cost <= 0 {
			return fmt.Errorf("rules: cooperative upgrade %q must have a positive cost", id)
		}
	}
	if r.PlotPurchase.BaseCost <= 0 || r.PlotPurchase.CostGrowthFactor < 1 {
		return fmt.Errorf("rules: plot purchase pricing out of range (%d, %v)", r.PlotPurchase.BaseCost, r.PlotPurchase.CostGrowthFactor)
	}
	if r.ActionLogDisplayCount <= 0 {
		return fmt.Errorf("rules: action_log_display_count must be positive, got %d", r.ActionLogDisplayCount)
	}
	return nil
}
