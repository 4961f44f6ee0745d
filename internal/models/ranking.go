package models

import "time"

// RankingEntry is a submission's leaderboard row. Entries are created
// once per submission and never mutated; ordering happens on read.
type RankingEntry struct {
	ID    string    `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"type:text;not null" json:"name"`
	Score int       `gorm:"not null" json:"score"`
	Date  time.Time `gorm:"type:timestamp" json:"date"`
}

func (RankingEntry) TableName() string {
	return "rankings"
}
