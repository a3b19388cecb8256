package routes

import (
	"github.com/gin-gonic/gin"

	patientqueuehandlers "antrean/internal/interfaces/http/handlers/patientqueue"
)

type PatientQueueRouteConfig struct {
	PatientQueueHandler *patientqueuehandlers.PatientQueueHandler
}

func SetupPatientQueueRoutes(api *gin.RouterGroup, config *PatientQueueRouteConfig) {
	queues := api.Group("/patient-queues")
	{
		queues.GET("", config.PatientQueueHandler.List)
		queues.POST("", config.PatientQueueHandler.Register)
		queues.DELETE("/:id", config.PatientQueueHandler.Delete)
	}
}
