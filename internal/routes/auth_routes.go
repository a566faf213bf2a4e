package routes

import (
	"reliefassist/internal/controllers"
	"reliefassist/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)
	r.GET("/logout", middleware.RequireAuth(), controllers.Logout)
}
