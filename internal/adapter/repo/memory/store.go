// Package memory provides in-process repository implementations used in
// tests and when no database is configured.
package memory

import (
	"sync"

	"harvestduel/internal/app/ports"
)

type Store struct {
	mu   sync.RWMutex
	days map[string][]ports.MatchDayRecord
}

func NewStore() *Store {
	return &Store{
		days: make(map[string][]ports.MatchDayRecord),
	}
}
