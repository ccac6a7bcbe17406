package model

// Category is a global, read-only grouping for tasks.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`
}
