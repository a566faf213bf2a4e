package models

import "gorm.io/gorm"

// TaskAssignment links a task to a volunteer. The set for a task is replaced
// wholesale on every task edit rather than diffed.
type TaskAssignment struct {
	gorm.Model
	TaskID      uint `json:"task_id"`
	VolunteerID uint `json:"volunteer_id"`
}
