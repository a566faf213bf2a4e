package routes

import (
	"reliefassist/internal/controllers"
	"reliefassist/internal/middleware"
	"reliefassist/internal/models"

	"github.com/gin-gonic/gin"
)

func ManagerRoutes(r *gin.Engine) {
	manager := r.Group("")
	manager.Use(middleware.RequireRoles(models.RoleManager))
	{
		manager.GET("/tasks", controllers.ListTasks)
		manager.GET("/task/new", controllers.NewTaskForm)
		manager.POST("/task/new", controllers.SaveTask)
		manager.GET("/task/:id/edit", controllers.EditTaskForm)
		manager.POST("/task/:id/edit", controllers.SaveTask)

		manager.GET("/resource/new", controllers.NewCenterResourceForm)
		manager.POST("/resource/new", controllers.SaveCenterResource)
		manager.GET("/resource/:id/edit", controllers.EditCenterResourceForm)
		manager.POST("/resource/:id/edit", controllers.SaveCenterResource)

		manager.POST("/disaster/new", controllers.SaveDisaster)
		manager.GET("/disaster/:id/edit", controllers.EditDisasterForm)
		manager.POST("/disaster/:id/edit", controllers.SaveDisaster)

		manager.GET("/volunteers", controllers.ListVolunteers)
		manager.GET("/volunteer/:id", controllers.GetVolunteer)

		manager.GET("/donors", controllers.ListDonors)
		manager.GET("/donor/:id", controllers.GetDonor)
	}
}
