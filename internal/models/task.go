package models

import "time"

type Task struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string     `json:"title" gorm:"size:200;not null"`
	Description string     `json:"description" gorm:"size:1000"`
	DueDate     *time.Time `json:"due_date"`
	StateID     int64      `json:"state_id" gorm:"not null;index"`
	State       *State     `json:"state,omitempty" gorm:"foreignKey:StateID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
