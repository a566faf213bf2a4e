package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reliefassist/internal/config"
	"reliefassist/internal/models"
)

// ListVolunteers lists the roster ordered by last name.
func ListVolunteers(c *gin.Context) {
	var volunteers []models.Volunteer
	if err := config.DB.Order("last_name").Find(&volunteers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch volunteers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": volunteers})
}

type volunteerTaskRow struct {
	TaskID      uint       `json:"task_id"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
	Disaster    *string    `json:"disaster"`
}

// GetVolunteer returns one volunteer and every task assigned to them.
func GetVolunteer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var volunteer models.Volunteer
	if err := config.DB.First(&volunteer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Volunteer not found"})
		return
	}

	rows := []volunteerTaskRow{}
	err := config.DB.Table("task_assignments AS ta").
		Select("t.id AS task_id, t.description, t.due_date, t.status, d.name AS disaster").
		Joins("JOIN tasks t ON t.id = ta.task_id AND t.deleted_at IS NULL").
		Joins("LEFT JOIN disasters d ON d.id = t.disaster_id").
		Where("ta.volunteer_id = ? AND ta.deleted_at IS NULL", volunteer.ID).
		Order("t.due_date IS NULL, t.due_date").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"volunteer": volunteer, "tasks": rows})
}
