// Package http wires repositories, use cases, and handlers into the gin
// engine.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	doctorusecases "antrean/internal/application/doctor/usecases"
	patientqueueusecases "antrean/internal/application/patientqueue/usecases"
	scheduleusecases "antrean/internal/application/schedule/usecases"
	"antrean/internal/domain/patientqueue"
	"antrean/internal/infrastructure/config"
	"antrean/internal/infrastructure/repository"
	doctorhandlers "antrean/internal/interfaces/http/handlers/doctor"
	patientqueuehandlers "antrean/internal/interfaces/http/handlers/patientqueue"
	timeslothandlers "antrean/internal/interfaces/http/handlers/timeslot"
	"antrean/internal/interfaces/http/middleware"
	"antrean/internal/interfaces/http/routes"
	"antrean/internal/shared/db"
	"antrean/internal/shared/logger"
	"antrean/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	engine              *gin.Engine
	cfg                 *config.Config
	doctorHandler       *doctorhandlers.DoctorHandler
	timeSlotHandler     *timeslothandlers.TimeSlotHandler
	patientQueueHandler *patientqueuehandlers.PatientQueueHandler
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	if err := utils.RegisterCustomValidators(); err != nil {
		return nil, err
	}

	doctorRepo := repository.NewDoctorRepository(database)
	visitTimeRepo := repository.NewVisitTimeRepository(database)
	entryRepo := repository.NewPatientQueueRepository(database)

	numberGenerator := patientqueue.NewSpecializationNumberGenerator(doctorRepo, entryRepo)
	txManager := db.NewTransactionManager(database)

	doctorHandler := doctorhandlers.NewDoctorHandler(
		doctorusecases.NewListDoctorsUseCase(doctorRepo, log),
		doctorusecases.NewListSpecializationsUseCase(doctorRepo, log),
		doctorusecases.NewListDoctorsBySpecializationUseCase(doctorRepo, log),
	)

	timeSlotHandler := timeslothandlers.NewTimeSlotHandler(
		scheduleusecases.NewListAvailableSlotsUseCase(visitTimeRepo, entryRepo, log),
		scheduleusecases.NewCheckSlotUseCase(entryRepo, log),
	)

	patientQueueHandler := patientqueuehandlers.NewPatientQueueHandler(
		patientqueueusecases.NewRegisterPatientUseCase(entryRepo, doctorRepo, visitTimeRepo, numberGenerator, txManager, log),
		patientqueueusecases.NewListQueuesUseCase(entryRepo, doctorRepo, visitTimeRepo, log),
		patientqueueusecases.NewDeleteQueueUseCase(entryRepo, doctorRepo, visitTimeRepo, log),
	)

	return &Router{
		engine:              engine,
		cfg:                 cfg,
		doctorHandler:       doctorHandler,
		timeSlotHandler:     timeSlotHandler,
		patientQueueHandler: patientQueueHandler,
	}, nil
}

// SetupRoutes configures middleware and registers every route.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Hospital Queue System API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"doctors":       "/api/doctors",
				"timeSlots":     "/api/time-slots",
				"patientQueues": "/api/patient-queues",
			},
		})
	})

	api := r.engine.Group("/api")
	routes.SetupDoctorRoutes(api, &routes.DoctorRouteConfig{DoctorHandler: r.doctorHandler})
	routes.SetupTimeSlotRoutes(api, &routes.TimeSlotRouteConfig{TimeSlotHandler: r.timeSlotHandler})
	routes.SetupPatientQueueRoutes(api, &routes.PatientQueueRouteConfig{PatientQueueHandler: r.patientQueueHandler})

	r.engine.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound, "Route "+c.Request.URL.Path+" not found")
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
