package match

import (
	"harvestduel/internal/app/ports"
	"harvestduel/internal/domain/farming"
)

// PlayerSummary is the per-player slice of a day snapshot.
type PlayerSummary struct {
	Name               string                       `json:"name"`
	Day                int                          `json:"day"`
	Season             farming.Season               `json:"season"`
	Weather            farming.Weather              `json:"weather"`
	Money              int                          `json:"money"`
	Energy             int                          `json:"energy"`
	Plots              []farming.PlotStatus         `json:"plots"`
	HarvestedCrops     map[farming.CropKind]int     `json:"harvested_crops"`
	Upgrades           []string                     `json:"upgrades"`
	MarketTrends       map[farming.CropKind]float64 `json:"market_trends"`
	InvalidActionCount int                          `json:"invalid_action_count"`
	RecentActions      []string                     `json:"recent_actions"`
	Score              int                          `json:"score"`
}

// MarketSummary copies the shared counters so snapshot consumers cannot
// reach back into live state.
type MarketSummary struct {
	Supply map[farming.CropKind]int `json:"supply"`
	Demand map[farming.CropKind]int `json:"demand"`
}

// DaySnapshot is emitted once per simulated day; the final one additionally
// carries the game-over verdict.
type DaySnapshot struct {
	MatchID       string                `json:"match_id"`
	Day           int                   `json:"day"`
	Player1       PlayerSummary         `json:"player1"`
	Player2       PlayerSummary         `json:"player2"`
	Market        MarketSummary         `json:"market"`
	Player1Action farming.ActionRequest `json:"player1_action"`
	Player2Action farming.ActionRequest `json:"player2_action"`
	DayLog        []string              `json:"day_log"`
	GameLog       []string              `json:"game_log,omitempty"`

	GameOver     bool   `json:"game_over"`
	Winner       string `json:"winner,omitempty"`
	Player1Score int    `json:"player1_score,omitempty"`
	Player2Score int    `json:"player2_score,omitempty"`
}

func summarizePlayer(st *farming.PlayerState, rules *farming.Rules) PlayerSummary {
	harvested := make(map[farming.CropKind]int, len(st.HarvestedCrops))
	for k, v := range st.HarvestedCrops {
		harvested[k] = v
	}
	trends := make(map[farming.CropKind]float64, len(st.MarketTrends))
	for k, v := range st.MarketTrends {
		trends[k] = v
	}
	upgrades := make([]string, len(st.Upgrades))
	copy(upgrades, st.Upgrades)

	return PlayerSummary{
		Name:               st.Name,
		Day:                st.Day,
		Season:             st.Season,
		Weather:            st.Weather,
		Money:              st.Money,
		Energy:             st.Energy,
		Plots:              st.PlotStatuses(),
		HarvestedCrops:     harvested,
		Upgrades:           upgrades,
		MarketTrends:       trends,
		InvalidActionCount: st.InvalidActionCount,
		RecentActions:      st.RecentActions(rules.ActionLogDisplayCount),
		Score:              st.FinalScore(),
	}
}

func summarizeMarket(m *farming.SharedMarket) MarketSummary {
	supply := make(map[farming.CropKind]int, len(m.Supply))
	for k, v := range m.Supply {
		supply[k] = v
	}
	demand := make(map[farming.CropKind]int, len(m.Demand))
	for k, v := range m.Demand {
		demand[k] = v
	}
	return MarketSummary{Supply: supply, Demand: demand}
}

// viewFor builds the decision-source projection for one player.
func viewFor(st *farming.PlayerState, rules *farming.Rules) ports.PlayerView {
	summary := summarizePlayer(st, rules)
	return ports.PlayerView{
		Player:             summary.Name,
		Day:                summary.Day,
		Season:             summary.Season,
		Weather:            summary.Weather,
		Money:              summary.Money,
		Energy:             summary.Energy,
		Plots:              summary.Plots,
		HarvestedCrops:     summary.HarvestedCrops,
		Upgrades:           summary.Upgrades,
		MarketTrends:       summary.MarketTrends,
		InvalidActionCount: summary.InvalidActionCount,
		RecentActions:      summary.RecentActions,
	}
}
