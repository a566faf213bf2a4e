package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reliefassist/internal/config"
	"reliefassist/internal/models"
)

// Dashboard shows the ten most recent disasters.
func Dashboard(c *gin.Context) {
	var disasters []models.Disaster
	if err := config.DB.Order("start_date DESC").Limit(10).Find(&disasters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch disasters"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"disasters": disasters})
}

// ListDisasters lists every disaster, newest first.
func ListDisasters(c *gin.Context) {
	var disasters []models.Disaster
	if err := config.DB.Order("id DESC").Find(&disasters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch disasters"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": disasters})
}

type inventoryRow struct {
	CenterResourceID uint   `json:"center_resource_id"`
	Center           string `json:"center"`
	ResourceType     string `json:"resource_type"`
	QuantityOnHand   int    `json:"quantity_on_hand"`
	Capacity         int    `json:"capacity"`
	CurrentLoad      int    `json:"current_load"`
}

// ListInventory lists stock per center joined with center capacity figures.
func ListInventory(c *gin.Context) {
	var rows []inventoryRow
	err := config.DB.Table("center_resources AS cr").
		Select("cr.id AS center_resource_id, rc.name AS center, r.resource_type, cr.quantity_on_hand, rc.capacity, rc.current_load").
		Joins("JOIN relief_centers rc ON rc.id = cr.center_id").
		Joins("JOIN resources r ON r.id = cr.resource_id").
		Where("cr.deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch inventory"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
