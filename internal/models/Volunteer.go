package models

import "gorm.io/gorm"

type Volunteer struct {
	gorm.Model
	UserID    *uint  `json:"user_id"` // account link; nil for roster-only volunteers
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Skills    string `json:"skills"`
}
