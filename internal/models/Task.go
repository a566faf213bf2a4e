package models

import (
	"time"

	"gorm.io/gorm"
)

type Task struct {
	gorm.Model
	DisasterID  uint       `json:"disaster_id"`
	CenterID    *uint      `json:"center_id"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`

	Assignments []TaskAssignment `gorm:"foreignKey:TaskID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"assignments,omitempty"`
}
