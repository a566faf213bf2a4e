package routes

import (
	"reliefassist/internal/controllers"
	"reliefassist/internal/middleware"
	"reliefassist/internal/models"

	"github.com/gin-gonic/gin"
)

func VolunteerRoutes(r *gin.Engine) {
	volunteer := r.Group("")
	volunteer.Use(middleware.RequireRoles(models.RoleVolunteer))
	{
		volunteer.GET("/my-tasks", controllers.MyTasks)
	}
}
