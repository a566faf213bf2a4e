package models

import "gorm.io/gorm"

// CenterResource records quantity-on-hand of one resource at one center.
// Duplicate (center, resource) pairs are allowed and double-count in the
// inventory views.
type CenterResource struct {
	gorm.Model
	CenterID       uint `json:"center_id"`
	ResourceID     uint `json:"resource_id"`
	QuantityOnHand int  `json:"quantity_on_hand" gorm:"default:0"`
}
