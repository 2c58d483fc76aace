// Package gormrepo persists match history in Postgres through gorm.
package gormrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"harvestduel/internal/app/ports"
)

type MatchHistoryRepo struct {
	db *gorm.DB
}

func NewMatchHistoryRepo(db *gorm.DB) MatchHistoryRepo {
	return MatchHistoryRepo{db: db}
}

func (r MatchHistoryRepo) SaveDay(ctx context.Context, record ports.MatchDayRecord) error {
	row := matchDayRow{
		MatchID:    record.MatchID,
		Day:        record.Day,
		Final:      record.Final,
		Snapshot:   record.Snapshot,
		RecordedAt: record.RecordedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r MatchHistoryRepo) ListByMatchID(ctx context.Context, matchID string) ([]ports.MatchDayRecord, error) {
	rows := []matchDayRow{}
	err := r.db.WithContext(ctx).
		Where(&matchDayRow{MatchID: matchID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "day"}}},
		}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.MatchDayRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.MatchDayRecord{
			MatchID:    row.MatchID,
			Day:        row.Day,
			Final:      row.Final,
			Snapshot:   row.Snapshot,
			RecordedAt: row.RecordedAt,
		})
	}
	return out, nil
}
