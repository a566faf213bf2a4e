package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reliefassist/internal/config"
	"reliefassist/internal/models"
)

// AdminStats reports entity counts plus a per-role breakdown of users
// ("volunteer_users", "manager_users", ...).
func AdminStats(c *gin.Context) {
	stats := gin.H{}
	counts := []struct {
		key   string
		model interface{}
	}{
		{"disasters", &models.Disaster{}},
		{"resources", &models.Resource{}},
		{"tasks", &models.Task{}},
		{"volunteers", &models.Volunteer{}},
		{"donors", &models.Donor{}},
		{"users", &models.User{}},
	}
	for _, entry := range counts {
		var n int64
		if err := config.DB.Model(entry.model).Count(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute stats"})
			return
		}
		stats[entry.key] = n
	}

	var roleCounts []struct {
		Role string
		Cnt  int64
	}
	if err := config.DB.Model(&models.User{}).
		Select("role, COUNT(*) AS cnt").
		Group("role").
		Scan(&roleCounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute stats"})
		return
	}
	for _, rc := range roleCounts {
		stats[rc.Role+"_users"] = rc.Cnt
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// ListUsers lists every account ordered by email.
func ListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("email").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// RemoveUser deletes an account and its sessions. Roster rows that pointed
// at the account keep their history; only the user link goes stale.
func RemoveUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := config.DB.Delete(&models.User{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if err := config.DB.Where("user_id = ?", id).Delete(&models.Session{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User removed"})
}

// ChangeUserRole sets a user's role; the new value must be one of the four
// known roles.
func ChangeUserRole(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var body struct {
		NewRole string `json:"new_role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newRole := strings.ToLower(strings.TrimSpace(body.NewRole))
	if !models.ValidRole(newRole) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", id).Update("role", newRole).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User role updated"})
}
