package inmemory

import (
	"sync"

	"harvestduel/internal/domain/farming"
)

type Snapshot struct {
	ActionTotal      uint64            `json:"action_total"`
	ActionApplied    uint64            `json:"action_applied"`
	ActionRejected   uint64            `json:"action_rejected"`
	DecisionFailures uint64            `json:"decision_failures"`
	ByFailureCode    map[string]uint64 `json:"by_failure_code"`
	ByPlayer         map[string]uint64 `json:"by_player"`
}

type Recorder struct {
	mu               sync.Mutex
	applied          uint64
	rejected         uint64
	decisionFailures uint64
	byFailureCode    map[string]uint64
	byPlayer         map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byFailureCode: map[string]uint64{},
		byPlayer:      map[string]uint64{},
	}
}

func (r *Recorder) RecordApplied(player string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied++
	r.byPlayer[player]++
}

func (r *Recorder) RecordRejected(player string, code farming.FailureCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
	r.byPlayer[player]++
	r.byFailureCode[string(code)]++
}

func (r *Recorder) RecordDecisionFailure(player string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decisionFailures++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionApplied:    r.applied,
		ActionRejected:   r.rejected,
		ActionTotal:      r.applied + r.rejected,
		DecisionFailures: r.decisionFailures,
		ByFailureCode:    make(map[string]uint64, len(r.byFailureCode)),
		ByPlayer:         make(map[string]uint64, len(r.byPlayer)),
	}
	for k, v := range r.byFailureCode {
		out.ByFailureCode[k] = v
	}
	for k, v := range r.byPlayer {
		out.ByPlayer[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
