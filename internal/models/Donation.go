package models

import (
	"time"

	"gorm.io/gorm"
)

type Donation struct {
	gorm.Model
	DonorID      uint      `json:"donor_id"`
	DonationType string    `json:"donation_type"` // "cash" or an in-kind resource type
	Amount       float64   `json:"amount"`
	DonationDate time.Time `json:"donation_date"`

	Allocations []DonationAllocation `gorm:"foreignKey:DonationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"allocations,omitempty"`
}
