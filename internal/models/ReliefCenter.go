package models

import "gorm.io/gorm"

type ReliefCenter struct {
	gorm.Model
	Name        string `json:"name" binding:"required"`
	Capacity    int    `json:"capacity"`
	CurrentLoad int    `json:"current_load"`
}
