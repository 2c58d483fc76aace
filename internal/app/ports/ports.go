package ports

import (
	"context"
	"errors"
	"time"

	"harvestduel/internal/domain/farming"
)

var ErrNotFound = errors.New("not found")

// PlayerView is the read-only projection handed to a decision source. It is
// everything an external policy may see about its own player.
type PlayerView struct {
	Player             string                       `json:"player"`
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
}

// DecisionProvider produces exactly one action request for a player's turn.
// The engine treats an error exactly like an unknown action: the turn is
// consumed, the match never crashes.
type DecisionProvider interface {
	Decide(ctx context.Context, view PlayerView) (farming.ActionRequest, error)
}

// MatchDayRecord archives one emitted snapshot. Snapshot carries the
// marshaled match.DaySnapshot so repositories stay schema-agnostic.
type MatchDayRecord struct {
	MatchID    string
	Day        int
	Final      bool
	Snapshot   []byte
	RecordedAt time.Time
}

// MatchHistoryRepository archives per-day snapshots for later retrieval.
// Archival is best-effort history, not live state: the simulation never
// reads its own past back.
type MatchHistoryRepository interface {
	SaveDay(ctx context.Context, record MatchDayRecord) error
	ListByMatchID(ctx context.Context, matchID string) ([]MatchDayRecord, error)
}

// MatchMetrics counts action outcomes per player.
type MatchMetrics interface {
	RecordApplied(player string)
	RecordRejected(player string, code farming.FailureCode)
	RecordDecisionFailure(player string)
}
