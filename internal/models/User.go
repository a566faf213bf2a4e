package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email        string `json:"email" gorm:"unique"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"` // "volunteer", "donor", "manager", "admin"

	// Actor-specific relations
	Volunteer *Volunteer `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"volunteer,omitempty"`
	Donor     *Donor     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"donor,omitempty"`
}
