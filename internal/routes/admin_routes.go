package routes

import (
	"reliefassist/internal/controllers"
	"reliefassist/internal/middleware"
	"reliefassist/internal/models"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("")
	admin.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/admin", controllers.AdminStats)
		admin.GET("/users", controllers.ListUsers)
		admin.POST("/user/:id/remove", controllers.RemoveUser)
		admin.POST("/user/:id/role", controllers.ChangeUserRole)
	}
}
