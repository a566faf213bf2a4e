package models

import "gorm.io/gorm"

type Donor struct {
	gorm.Model
	UserID    *uint  `json:"user_id"` // account link; nil for roster-only donors
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`

	Donations []Donation `gorm:"foreignKey:DonorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"donations,omitempty"`
}
