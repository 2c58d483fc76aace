package farming

import "fmt"

// Crop lives inside exactly one Plot from plant to harvest.
type Crop struct {
	Kind           CropKind `json:"kind"`
	PlantedOnDay   int      `json:"planted_on_day"`
	GrowthProgress float64  `json:"growth_progress"`
	Quality        float64  `json:"quality"`
}

// Mature reports whether the crop can be harvested.
func (c Crop) Mature() bool {
	return c.GrowthProgress >= 1.0
}

// Plot is one unit of ownable land, vacant or holding one crop.
type Plot struct {
	SoilQuality float64 `json:"soil_quality"`
	Crop        *Crop   `json:"crop,omitempty"`
}

func NewPlot() Plot {
	return Plot{SoilQuality: 1.0}
}

func (p Plot) Vacant() bool {
	return p.Crop == nil
}

// PlayerState is the mutable aggregate for one player. It is created once per
// match and mutated in place by action handlers and the day tick.
type PlayerState struct {
	Name               string               `json:"name"`
	Day                int                  `json:"day"`
	Season             Season               `json:"season"`
	Weather            Weather              `json:"weather"`
	Money              int                  `json:"money"`
	Energy             int                  `json:"energy"`
	Plots              []Plot               `json:"plots"`
	HarvestedCrops     map[CropKind]int     `json:"harvested_crops"`
	Upgrades           []string             `json:"upgrades"`
	MarketTrends       map[CropKind]float64 `json:"market_trends"`
	InvalidActionCount int                  `json:"invalid_action_count"`
	ActionLog          []string             `json:"action_log"`
}

// NewPlayerState seeds a player at day 1 with one vacant plot, full energy,
// and the configured starting money.
func NewPlayerState(name string, rules *Rules) *PlayerState {
	return &PlayerState{
		Name:           name,
		Day:            1,
		Season:         SeasonForDay(1, rules),
		Weather:        rules.WeatherTypes[0],
		Money:          rules.StartingMoney,
		Energy:         rules.MaxEnergy,
		Plots:          []Plot{NewPlot()},
		HarvestedCrops: map[CropKind]int{},
		MarketTrends:   map[CropKind]float64{},
	}
}

// HasUpgrade reports ownership of an upgrade id.
func (s *PlayerState) HasUpgrade(id string) bool {
	for _, owned := range s.Upgrades {
		if owned == id {
			return true
		}
	}
	return false
}

// RecordAction appends one descriptive line to the append-only action log.
func (s *PlayerState) RecordAction(line string) {
	s.ActionLog = append(s.ActionLog, line)
}

// RecentActions returns up to n of the newest action log lines, oldest first.
// The log itself is never truncated; this is the display window.
func (s *PlayerState) RecentActions(n int) []string {
	if n <= 0 || len(s.ActionLog) == 0 {
		return nil
	}
	start := len(s.ActionLog) - n
	if start < 0 {
		start = 0
	}
	out := make([]string, len(s.ActionLog)-start)
	copy(out, s.ActionLog[start:])
	return out
}

// TotalHarvested sums every held crop unit.
func (s *PlayerState) TotalHarvested() int {
	total := 0
	for _, n := range s.HarvestedCrops {
		total += n
	}
	return total
}

// FinalScore is money plus the value of held crops, one point per unit.
func (s *PlayerState) FinalScore() int {
	return s.Money + s.TotalHarvested()
}

// PlotStatus is the per-plot projection handed to presentation layers and
// decision sources. Index is 1-based, matching the action parameter space.
type PlotStatus struct {
	Index         int      `json:"index"`
	Vacant        bool     `json:"vacant"`
	CropKind      CropKind `json:"crop_kind,omitempty"`
	Maturity      string   `json:"maturity,omitempty"`
	GrowthPercent float64  `json:"growth_percent"`
}

func (ps PlotStatus) String() string {
	if ps.Vacant {
		return fmt.Sprintf("Plot %d: Vacant", ps.Index)
	}
	return fmt.Sprintf("Plot %d: %s (%s, %.1f%% grown)", ps.Index, ps.CropKind, ps.Maturity, ps.GrowthPercent)
}

// PlotStatuses projects every plot in insertion order.
func (s *PlayerState) PlotStatuses() []PlotStatus {
	out := make([]PlotStatus, 0, len(s.Plots))
	for i, plot := range s.Plots {
		status := PlotStatus{Index: i + 1, Vacant: plot.Vacant()}
		if plot.Crop != nil {
			status.CropKind = plot.Crop.Kind
			status.GrowthPercent = plot.Crop.GrowthProgress * 100
			if plot.Crop.Mature() {
				status.Maturity = "Mature"
			} else {
				status.Maturity = "Growing"
			}
		}
		out = append(out, status)
	}
	return out
}

// SharedMarket is the session-wide supply/demand ledger. Counters accumulate
// monotonically for the whole session; there is no decay or reset.
type SharedMarket struct {
	Supply map[CropKind]int `json:"supply"`
	Demand map[CropKind]int `json:"demand"`
}

func NewSharedMarket() *SharedMarket {
	return &SharedMarket{
		Supply: map[CropKind]int{},
		Demand: map[CropKind]int{},
	}
}
