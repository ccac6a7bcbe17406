package model

import (
	"time"

	"gorm.io/datatypes"
)

// TaskStatus is the progress state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Task is a to-do item owned by a user, optionally filed under a category.
type Task struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	CategoryID  *uint           `json:"category_id" gorm:"index"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Deadline    *datatypes.Date `json:"deadline"`
	Status      TaskStatus      `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Category *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

// TaskColumns are replaced wholesale by an update.
var TaskColumns = []string{"category_id", "title", "description", "deadline", "status"}

func (t *Task) Key() uint { return t.ID }

func (t *Task) SetOwner(userID uint) { t.UserID = userID }

// ApplyDefaults fills in the status for records created or updated without one.
func (t *Task) ApplyDefaults() {
	if t.Status == "" {
		t.Status = TaskStatusPending
	}
}

// CategoryName returns the joined category name, or "" when uncategorised.
func (t *Task) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}
