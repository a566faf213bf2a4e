package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"reliefassist/internal/config"
	"reliefassist/internal/middleware"
	"reliefassist/internal/models"
)

type taskRow struct {
	TaskID      uint       `json:"task_id"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	Disaster    *string    `json:"disaster"`
	Center      *string    `json:"center"`
	Volunteers  int64      `json:"volunteers"`
}

// ListTasks lists every task with its disaster/center names and the number of
// assigned volunteers, soonest due date first, undated tasks last.
func ListTasks(c *gin.Context) {
	var rows []taskRow
	err := config.DB.Table("tasks AS t").
		Select("t.id AS task_id, t.description, t.status, t.due_date, d.name AS disaster, rc.name AS center, COUNT(ta.id) AS volunteers").
		Joins("LEFT JOIN disasters d ON d.id = t.disaster_id").
		Joins("LEFT JOIN relief_centers rc ON rc.id = t.center_id").
		Joins("LEFT JOIN task_assignments ta ON ta.task_id = t.id AND ta.deleted_at IS NULL").
		Where("t.deleted_at IS NULL").
		Group("t.id, t.description, t.status, t.due_date, d.name, rc.name").
		Order("t.due_date IS NULL, t.due_date").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch tasks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// NewTaskForm returns the select-list options the task form needs.
func NewTaskForm(c *gin.Context) {
	payload, ok := taskFormPayload(c, nil, nil)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, payload)
}

// EditTaskForm returns an existing task, its assigned volunteer ids and the
// form options. Unknown ids answer 404.
func EditTaskForm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var task models.Task
	if err := config.DB.First(&task, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var assigned []uint
	if err := config.DB.Model(&models.TaskAssignment{}).
		Where("task_id = ?", task.ID).
		Pluck("volunteer_id", &assigned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch assignments"})
		return
	}

	payload, ok := taskFormPayload(c, &task, assigned)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, payload)
}

func taskFormPayload(c *gin.Context, task *models.Task, assigned []uint) (gin.H, bool) {
	disasters, err := disasterOptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch form options"})
		return nil, false
	}
	centers, err := centerOptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch form options"})
		return nil, false
	}
	volunteers, err := volunteerOptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch form options"})
		return nil, false
	}

	payload := gin.H{
		"disasters":  disasters,
		"centers":    centers,
		"volunteers": volunteers,
	}
	if task != nil {
		payload["task"] = task
		payload["assigned"] = assigned
	}
	return payload, true
}

type taskInput struct {
	DisasterID  uint   `json:"disaster_id" binding:"required"`
	CenterID    *uint  `json:"center_id"`
	Description string `json:"description" binding:"required"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status" binding:"required"`
	Volunteers  []uint `json:"volunteers"`
}

// SaveTask creates or updates a task and replaces its volunteer assignments
// wholesale. The upsert, the assignment delete and the reinsert run in a
// single transaction, so a failure never leaves a task with half-replaced
// assignments.
func SaveTask(c *gin.Context) {
	var input taskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dueDate, err := parseDate(input.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must be YYYY-MM-DD"})
		return
	}

	editing := c.Param("id") != ""
	var task models.Task
	if editing {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		if err := config.DB.First(&task, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
			}
			return
		}
	}

	task.DisasterID = input.DisasterID
	task.CenterID = input.CenterID
	task.Description = input.Description
	task.DueDate = dueDate
	task.Status = input.Status

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	if editing {
		if err := tx.Save(&task).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update task: " + err.Error()})
			return
		}
		if err := tx.Where("task_id = ?", task.ID).Delete(&models.TaskAssignment{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear assignments: " + err.Error()})
			return
		}
	} else {
		if err := tx.Create(&task).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create task: " + err.Error()})
			return
		}
	}

	if len(input.Volunteers) > 0 {
		assignments := make([]models.TaskAssignment, 0, len(input.Volunteers))
		for _, vid := range input.Volunteers {
			assignments = append(assignments, models.TaskAssignment{TaskID: task.ID, VolunteerID: vid})
		}
		if err := tx.Create(&assignments).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not assign volunteers: " + err.Error()})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	status := http.StatusOK
	if !editing {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"task_id": task.ID})
}

type myTaskRow struct {
	TaskID      uint       `json:"task_id"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
	Disaster    *string    `json:"disaster"`
	Center      *string    `json:"center"`
}

// MyTasks lists the tasks assigned to the logged-in volunteer. A volunteer
// account without assignments (or without a roster profile yet) gets an
// empty list, not an error.
func MyTasks(c *gin.Context) {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no principal"})
		return
	}

	var volunteer models.Volunteer
	err := config.DB.Where("user_id = ?", userID).First(&volunteer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"data": []myTaskRow{}})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	rows := []myTaskRow{}
	err = config.DB.Table("task_assignments AS ta").
		Select("t.id AS task_id, t.description, t.due_date, t.status, d.name AS disaster, rc.name AS center").
		Joins("JOIN tasks t ON t.id = ta.task_id AND t.deleted_at IS NULL").
		Joins("LEFT JOIN disasters d ON d.id = t.disaster_id").
		Joins("LEFT JOIN relief_centers rc ON rc.id = t.center_id").
		Where("ta.volunteer_id = ? AND ta.deleted_at IS NULL", volunteer.ID).
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch tasks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
