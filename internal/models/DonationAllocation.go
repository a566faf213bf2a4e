package models

import "gorm.io/gorm"

// DonationAllocation records how a slice of a donation was spent: cash by
// AmountUsed, in-kind goods by Quantity.
type DonationAllocation struct {
	gorm.Model
	DonationID uint    `json:"donation_id"`
	TaskID     *uint   `json:"task_id"`
	AmountUsed float64 `json:"amount_used"`
	Quantity   int     `json:"quantity"`
}
