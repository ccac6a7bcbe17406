package model

import "time"

// Resource is a bookmarked video, article, report or tool.
type Resource struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Type      string    `json:"type" gorm:"size:50;not null"`
	URL       string    `json:"url" gorm:"size:2048;not null"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// ResourceColumns are replaced wholesale by an update.
var ResourceColumns = []string{"title", "type", "url", "notes"}

func (r *Resource) Key() uint { return r.ID }

func (r *Resource) SetOwner(userID uint) { r.UserID = userID }

func (r *Resource) ApplyDefaults() {}
