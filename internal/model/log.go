package model

import (
	"time"

	"gorm.io/datatypes"
)

// Log is a daily journal entry with a one-word mood.
type Log struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	LogDate   datatypes.Date `json:"log_date" gorm:"not null;index"`
	Summary   string         `json:"summary" gorm:"type:text;not null"`
	Mood      string         `json:"mood" gorm:"size:50;not null"`
	CreatedAt time.Time      `json:"created_at"`
}

// LogColumns are replaced wholesale by an update.
var LogColumns = []string{"log_date", "summary", "mood"}

func (l *Log) Key() uint { return l.ID }

func (l *Log) SetOwner(userID uint) { l.UserID = userID }

func (l *Log) ApplyDefaults() {}
