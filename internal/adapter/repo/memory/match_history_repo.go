package memory

import (
	"context"

	"harvestduel/internal/app/ports"
)

type MatchHistoryRepo struct {
	store *Store
}

func NewMatchHistoryRepo(store *Store) MatchHistoryRepo {
	return MatchHistoryRepo{store: store}
}

func (r MatchHistoryRepo) SaveDay(_ context.Context, record ports.MatchDayRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	snapshot := make([]byte, len(record.Snapshot))
	copy(snapshot, record.Snapshot)
	record.Snapshot = snapshot
	r.store.days[record.MatchID] = append(r.store.days[record.MatchID], record)
	return nil
}

func (r MatchHistoryRepo) ListByMatchID(_ context.Context, matchID string) ([]ports.MatchDayRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	records, ok := r.store.days[matchID]
	if !ok || len(records) == 0 {
		return nil, ports.ErrNotFound
	}
	out := make([]ports.MatchDayRecord, len(records))
	copy(out, records)
	return out, nil
}
