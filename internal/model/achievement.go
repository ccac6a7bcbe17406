package model

import (
	"time"

	"gorm.io/datatypes"
)

// Achievement records something the user accomplished on a given day.
type Achievement struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
	AchievedOn  datatypes.Date `json:"achieved_on" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
}

// AchievementColumns are replaced wholesale by an update.
var AchievementColumns = []string{"title", "description", "achieved_on"}

func (a *Achievement) Key() uint { return a.ID }

func (a *Achievement) SetOwner(userID uint) { a.UserID = userID }

func (a *Achievement) ApplyDefaults() {}
