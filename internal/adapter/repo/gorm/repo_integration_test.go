package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"harvestduel/internal/app/ports"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("HARVESTDUEL_DB_DSN")
	if dsn == "" {
		t.Skip("HARVESTDUEL_DB_DSN is required for integration test")
	}
	return dsn
}

func TestMatchHistoryRepo_RoundTrip(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	matchID := "it-history-roundtrip"
	ctx := context.Background()
	_ = db.Exec("DELETE FROM match_days WHERE match_id = ?", matchID).Error

	repo := NewMatchHistoryRepo(db)
	for day := 1; day <= 3; day++ {
		record := ports.MatchDayRecord{
			MatchID:    matchID,
			Day:        day,
			Final:      day == 3,
			Snapshot:   []byte(fmt.Sprintf(`{"day":%d}`, day)),
			RecordedAt: time.Now().UTC(),
		}
		if err := repo.SaveDay(ctx, record); err != nil {
			t.Fatalf("save day %d: %v", day, err)
		}
	}

	records, err := repo.ListByMatchID(ctx, matchID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if records[0].Day != 1 || records[2].Day != 3 || !records[2].Final {
		t.Fatalf("records out of order: %+v", records)
	}
}

func TestMatchHistoryRepo_NotFound(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo := NewMatchHistoryRepo(db)
	if _, err := repo.ListByMatchID(context.Background(), "it-no-such-match"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
