package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"reliefassist/internal/config"
)

const dateLayout = "2006-01-02"

// parseIDParam reads a numeric :id path parameter. On malformed input it
// answers 400 and returns false; callers just return.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// parseDate turns an optional "YYYY-MM-DD" form value into a nullable date.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// option is one entry of a form select list.
type option struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

// The *Options helpers feed the select lists of the manager forms, mirroring
// what the rendered views need to build their dropdowns.

func centerOptions() ([]option, error) {
	var opts []option
	err := config.DB.Table("relief_centers").
		Select("id, name AS label").
		Where("deleted_at IS NULL").
		Order("name").
		Scan(&opts).Error
	return opts, err
}

func resourceOptions() ([]option, error) {
	var opts []option
	err := config.DB.Table("resources").
		Select("id, resource_type AS label").
		Where("deleted_at IS NULL").
		Order("resource_type").
		Scan(&opts).Error
	return opts, err
}

func disasterOptions() ([]option, error) {
	var opts []option
	err := config.DB.Table("disasters").
		Select("id, name AS label").
		Where("deleted_at IS NULL").
		Order("name").
		Scan(&opts).Error
	return opts, err
}

func volunteerOptions() ([]option, error) {
	var opts []option
	err := config.DB.Table("volunteers").
		Select("id, (first_name || ' ' || last_name) AS label").
		Where("deleted_at IS NULL").
		Order("last_name").
		Scan(&opts).Error
	return opts, err
}
