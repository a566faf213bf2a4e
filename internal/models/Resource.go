package models

import "gorm.io/gorm"

// Resource is a catalog entry ("water", "blankets", ...); stock levels per
// center live in CenterResource.
type Resource struct {
	gorm.Model
	ResourceType string `json:"resource_type" binding:"required"`
}
