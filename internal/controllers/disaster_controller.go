package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"reliefassist/internal/config"
	"reliefassist/internal/models"
)

type disasterInput struct {
	Name      string `json:"name" binding:"required"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	Status    string `json:"status"`
}

// EditDisasterForm returns the disaster being edited.
func EditDisasterForm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var disaster models.Disaster
	if err := config.DB.First(&disaster, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Disaster not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"disaster": disaster})
}

// SaveDisaster creates or updates a disaster, decided by the presence of an
// id in the path.
func SaveDisaster(c *gin.Context) {
	var input disasterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := parseDate(input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}

	editing := c.Param("id") != ""
	var disaster models.Disaster
	if editing {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		if err := config.DB.First(&disaster, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Disaster not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
			}
			return
		}
	}

	disaster.Name = input.Name
	disaster.Location = input.Location
	if startDate != nil {
		disaster.StartDate = *startDate
	}
	disaster.Status = input.Status

	if err := config.DB.Save(&disaster).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save disaster: " + err.Error()})
		return
	}

	status := http.StatusOK
	if !editing {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"disaster_id": disaster.ID})
}
