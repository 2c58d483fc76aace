package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"harvestduel/internal/app/ports"
	"harvestduel/internal/domain/farming"

	"github.com/google/uuid"
)

var (
	ErrMissingRules     = errors.New("match: rules are required")
	ErrMissingProviders = errors.New("match: both decision providers are required")
)

// Driver runs one complete two-player match: it obtains one action per
// player per day from the decision providers, applies them in player order,
// advances the day, and emits a snapshot after each day. The simulation
// itself is deterministic once Rand is seeded; the decision providers are
// the only other source of variation.
type Driver struct {
	Rules   *farming.Rules
	Player1 ports.DecisionProvider
	Player2 ports.DecisionProvider
	History ports.MatchHistoryRepository // optional snapshot archive
	Metrics ports.MatchMetrics           // optional
	Rand    farming.Rand                 // optional; defaults to a time-seeded source
	Sink    func(DaySnapshot)            // optional; called once per emitted snapshot
	MatchID string                       // optional; defaults to a fresh uuid
	Now     func() time.Time             // optional
}

// Run plays the match to completion and returns the final snapshot. On
// cancellation it returns the last emitted snapshot together with the
// context error; effects already applied that day stay applied, and no
// action is ever left half-applied.
func (d Driver) Run(ctx context.Context) (DaySnapshot, error) {
	if d.Rules == nil {
		return DaySnapshot{}, ErrMissingRules
	}
	if err := d.Rules.Validate(); err != nil {
		return DaySnapshot{}, err
	}
	if d.Player1 == nil || d.Player2 == nil {
		return DaySnapshot{}, ErrMissingProviders
	}

	rules := d.Rules
	rng := d.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	matchID := d.MatchID
	if matchID == "" {
		matchID = uuid.NewString()
	}
	now := d.Now
	if now == nil {
		now = time.Now
	}

	p1 := farming.NewPlayerState("Player 1", rules)
	p2 := farming.NewPlayerState("Player 2", rules)
	market := farming.NewSharedMarket()

	var last DaySnapshot
	var gameLog []string
	for day := 1; day <= rules.TotalDays; day++ {
		if err := ctx.Err(); err != nil {
			return last, err
		}

		turns := []struct {
			actor    *farming.PlayerState
			partner  *farming.PlayerState
			provider ports.DecisionProvider
		}{
			{p1, p2, d.Player1},
			{p2, p1, d.Player2},
		}

		dayLog := make([]string, 0, len(turns))
		actions := make([]farming.ActionRequest, len(turns))
		for i, turn := range turns {
			if err := ctx.Err(); err != nil {
				return last, err
			}
			req := d.decide(ctx, turn.provider, viewFor(turn.actor, rules), turn.actor.Name)
			actions[i] = req

			res := farming.Apply(turn.actor, turn.partner, market, rules, req)
			if d.Metrics != nil {
				if res.OK {
					d.Metrics.RecordApplied(turn.actor.Name)
				} else {
					d.Metrics.RecordRejected(turn.actor.Name, res.Code)
				}
			}
			dayLog = append(dayLog, fmt.Sprintf("Day %d, %s: %s: %s", day, turn.actor.Name, req, res.Message))
		}

		gameLog = append(gameLog, dayLog...)

		snap := DaySnapshot{
			MatchID:       matchID,
			Day:           day,
			Player1:       summarizePlayer(p1, rules),
			Player2:       summarizePlayer(p2, rules),
			Market:        summarizeMarket(market),
			Player1Action: actions[0],
			Player2Action: actions[1],
			DayLog:        dayLog,
			GameLog:       append([]string(nil), gameLog...),
		}
		if err := d.emit(ctx, snap, now); err != nil {
			return last, err
		}
		last = snap

		if err := ctx.Err(); err != nil {
			return last, err
		}

		if day < rules.TotalDays {
			farming.AdvanceDay(p1, p2, rules, rng)
		}
	}

	final := DaySnapshot{
		MatchID:      matchID,
		Day:          rules.TotalDays,
		Player1:      summarizePlayer(p1, rules),
		Player2:      summarizePlayer(p2, rules),
		Market:       summarizeMarket(market),
		GameLog:      gameLog,
		GameOver:     true,
		Player1Score: p1.FinalScore(),
		Player2Score: p2.FinalScore(),
	}
	switch {
	case final.Player1Score > final.Player2Score:
		final.Winner = "Player 1"
	case final.Player2Score > final.Player1Score:
		final.Winner = "Player 2"
	default:
		final.Winner = "Tie"
	}
	if err := d.emit(ctx, final, now); err != nil {
		return last, err
	}
	return final, nil
}

// decide asks the provider for one action. Any failure, including a nil
// response, degrades to an empty request that the applier rejects as an
// unknown action; the engine itself never fails on a bad decision source.
func (d Driver) decide(ctx context.Context, provider ports.DecisionProvider, view ports.PlayerView, player string) farming.ActionRequest {
	req, err := provider.Decide(ctx, view)
	if err != nil {
		if d.Metrics != nil {
			d.Metrics.RecordDecisionFailure(player)
		}
		return farming.ActionRequest{}
	}
	return req
}

func (d Driver) emit(ctx context.Context, snap DaySnapshot, now func() time.Time) error {
	if d.Sink != nil {
		d.Sink(snap)
	}
	if d.History == nil {
		return nil
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal day snapshot: %w", err)
	}
	record := ports.MatchDayRecord{
		MatchID:    snap.MatchID,
		Day:        snap.Day,
		Final:      snap.GameOver,
		Snapshot:   payload,
		RecordedAt: now(),
	}
	// The archive keys rows by (match, day). The verdict snapshot carries the
	// same day number as the last regular snapshot, so it is stored one day
	// past it and sorts after everything else.
	if snap.GameOver {
		record.Day = snap.Day + 1
	}
	if err := d.History.SaveDay(ctx, record); err != nil {
		return fmt.Errorf("archive day %d: %w", snap.Day, err)
	}
	return nil
}
