package model

import (
	"time"

	"gorm.io/datatypes"
)

// Session is a timed study or work block, optionally tied to a task.
type Session struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"user_id" gorm:"not null;index"`
	TaskID          *uint          `json:"task_id" gorm:"index"`
	SessionDate     datatypes.Date `json:"session_date" gorm:"not null;index"`
	StartTime       datatypes.Time `json:"start_time" gorm:"not null"`
	EndTime         datatypes.Time `json:"end_time" gorm:"not null"`
	DurationMinutes *int           `json:"duration_minutes"`
	Notes           string         `json:"notes" gorm:"type:text"`
	CreatedAt       time.Time      `json:"created_at"`

	// Relations
	Task *Task `json:"-" gorm:"foreignKey:TaskID;constraint:OnDelete:SET NULL"`
}

// SessionColumns are replaced wholesale by an update.
var SessionColumns = []string{"task_id", "session_date", "start_time", "end_time", "duration_minutes", "notes"}

func (s *Session) Key() uint { return s.ID }

func (s *Session) SetOwner(userID uint) { s.UserID = userID }

// ApplyDefaults derives the duration from the start and end times when the
// client did not send one. Sessions that cross midnight keep a nil duration.
func (s *Session) ApplyDefaults() {
	if s.DurationMinutes != nil {
		return
	}
	elapsed := time.Duration(s.EndTime) - time.Duration(s.StartTime)
	if elapsed <= 0 {
		return
	}
	minutes := int(elapsed / time.Minute)
	s.DurationMinutes = &minutes
}

// Minutes returns the duration in whole minutes, 0 when unknown.
func (s *Session) Minutes() int {
	if s.DurationMinutes == nil {
		return 0
	}
	return *s.DurationMinutes
}

// TaskTitle returns the joined task title, or "" when the session has no task.
func (s *Session) TaskTitle() string {
	if s.Task == nil {
		return ""
	}
	return s.Task.Title
}
