package model

import "time"

// Note is a free-form titled note.
type Note struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteColumns are replaced wholesale by an update.
var NoteColumns = []string{"title", "content"}

func (n *Note) Key() uint { return n.ID }

func (n *Note) SetOwner(userID uint) { n.UserID = userID }

func (n *Note) ApplyDefaults() {}
