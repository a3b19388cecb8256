package routes

import (
	"github.com/gin-gonic/gin"

	doctorhandlers "antrean/internal/interfaces/http/handlers/doctor"
)

type DoctorRouteConfig struct {
	DoctorHandler *doctorhandlers.DoctorHandler
}

func SetupDoctorRoutes(api *gin.RouterGroup, config *DoctorRouteConfig) {
	doctors := api.Group("/doctors")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts
		doctors.GET("", config.DoctorHandler.ListDoctors)
		doctors.GET("/specializations", config.DoctorHandler.ListSpecializations)
		doctors.GET("/specialization/:specialization", config.DoctorHandler.ListBySpecialization)
	}
}
