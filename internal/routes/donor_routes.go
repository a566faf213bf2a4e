package routes

import (
	"reliefassist/internal/controllers"
	"reliefassist/internal/middleware"
	"reliefassist/internal/models"

	"github.com/gin-gonic/gin"
)

func DonorRoutes(r *gin.Engine) {
	donor := r.Group("")
	donor.Use(middleware.RequireRoles(models.RoleDonor))
	{
		donor.GET("/my-donations", controllers.MyDonations)
	}
}
