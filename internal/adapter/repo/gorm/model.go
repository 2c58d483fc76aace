package gormrepo

import (
	"time"

	"gorm.io/gorm"
)

type matchDayRow struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	MatchID    string `gorm:"index:idx_match_days_match_id_day,unique;size:64;not null"`
	Day        int    `gorm:"index:idx_match_days_match_id_day,unique;not null"`
	Final      bool   `gorm:"not null;default:false"`
	Snapshot   []byte `gorm:"type:jsonb;not null"`
	RecordedAt time.Time
}

func (matchDayRow) TableName() string { return "match_days" }

// Migrate creates or updates the schema for all rows this package persists.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&matchDayRow{})
}
