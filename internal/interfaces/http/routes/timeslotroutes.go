package routes

import (
	"github.com/gin-gonic/gin"

	timeslothandlers "antrean/internal/interfaces/http/handlers/timeslot"
)

type TimeSlotRouteConfig struct {
	TimeSlotHandler *timeslothandlers.TimeSlotHandler
}

func SetupTimeSlotRoutes(api *gin.RouterGroup, config *TimeSlotRouteConfig) {
	slots := api.Group("/time-slots")
	{
		slots.GET("/available/:doctorId", config.TimeSlotHandler.ListAvailable)
		slots.GET("/check/:doctorId/:timeSlotId", config.TimeSlotHandler.CheckSlot)
	}
}
