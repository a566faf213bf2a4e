package routes

import (
	"reliefassist/internal/controllers"

	"github.com/gin-gonic/gin"
)

func PublicRoutes(r *gin.Engine) {
	r.GET("/", controllers.Dashboard)
	r.GET("/disasters", controllers.ListDisasters)
	r.GET("/resources", controllers.ListInventory)
}
