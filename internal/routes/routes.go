package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the engine with recovery and request logging, then
// registers every route group.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	PublicRoutes(r)
	AuthRoutes(r)
	ManagerRoutes(r)
	VolunteerRoutes(r)
	DonorRoutes(r)
	AdminRoutes(r)

	return r
}
