package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"reliefassist/internal/config"
	"reliefassist/internal/models"
)

type centerResourceInput struct {
	CenterID       uint `json:"center_id" binding:"required"`
	ResourceID     uint `json:"resource_id" binding:"required"`
	QuantityOnHand int  `json:"quantity_on_hand"`
}

// NewCenterResourceForm returns the select-list options for the inventory
// form.
func NewCenterResourceForm(c *gin.Context) {
	payload, ok := centerResourceFormPayload(c, nil)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, payload)
}

// EditCenterResourceForm returns an existing inventory row plus the options.
func EditCenterResourceForm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var record models.CenterResource
	if err := config.DB.First(&record, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource entry not found"})
		return
	}
	payload, ok := centerResourceFormPayload(c, &record)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, payload)
}

func centerResourceFormPayload(c *gin.Context, record *models.CenterResource) (gin.H, bool) {
	centers, err := centerOptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch form options"})
		return nil, false
	}
	resources, err := resourceOptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch form options"})
		return nil, false
	}

	payload := gin.H{"centers": centers, "resources": resources}
	if record != nil {
		payload["record"] = record
	}
	return payload, true
}

// SaveCenterResource creates or updates a quantity-on-hand row. Duplicate
// (center, resource) pairs are allowed; aggregate views double-count them.
func SaveCenterResource(c *gin.Context) {
	var input centerResourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	editing := c.Param("id") != ""
	var record models.CenterResource
	if editing {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		if err := config.DB.First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Resource entry not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
			}
			return
		}
	}

	record.CenterID = input.CenterID
	record.ResourceID = input.ResourceID
	record.QuantityOnHand = input.QuantityOnHand

	if err := config.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save resource entry: " + err.Error()})
		return
	}

	status := http.StatusOK
	if !editing {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"center_resource_id": record.ID})
}
