package models

import (
	"time"

	"gorm.io/gorm"
)

type Disaster struct {
	gorm.Model
	Name      string    `json:"name" binding:"required"`
	Location  string    `json:"location"`
	StartDate time.Time `json:"start_date"`
	Status    string    `json:"status"`

	Tasks []Task `gorm:"foreignKey:DisasterID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"tasks,omitempty"`
}
