package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/StyleHubServices/salon-scheduler/internal/audit"
	"github.com/StyleHubServices/salon-scheduler/internal/config"
	"github.com/StyleHubServices/salon-scheduler/internal/handlers"
	infraRepo "github.com/StyleHubServices/salon-scheduler/internal/infra/repository"
	"github.com/StyleHubServices/salon-scheduler/internal/middleware"
	"github.com/StyleHubServices/salon-scheduler/internal/portrait"
	ucAppointment "github.com/StyleHubServices/salon-scheduler/internal/usecase/appointment"
	"github.com/StyleHubServices/salon-scheduler/internal/vip"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	vipService := vip.NewService(appointmentRepo, rdb)
	uploader := portrait.NewUploader(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	workflowUC := ucAppointment.NewWorkflow(
		appointmentRepo,
		auditDispatcher,
		vipService,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	stylistHandler := handlers.NewStylistHandler(db, uploader)
	clientHandler := handlers.NewClientHandler(db, vipService)

	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		workflowUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		getAvailabilityUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// CATALOG
			// ------------------------------
			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			// ------------------------------
			// STYLISTS
			// ------------------------------
			secured.GET("/me/stylists", stylistHandler.List)
			secured.POST("/me/stylists", stylistHandler.Create)
			secured.PATCH("/me/stylists/:id", stylistHandler.Update)
			secured.POST("/me/stylists/:id/portrait", stylistHandler.UploadPortrait)
			secured.GET("/me/stylists/:id/availability", appointmentHandler.Availability)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/me/clients", clientHandler.List)
			secured.GET("/me/clients/:id", clientHandler.Get)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PATCH("/me/clients/:id", clientHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/me/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/draft", appointmentHandler.ResetToDraft)

			secured.POST("/me/appointments/confirm", appointmentHandler.BulkConfirm)
			secured.POST("/me/appointments/complete", appointmentHandler.BulkComplete)
			secured.POST("/me/appointments/cancel", appointmentHandler.BulkCancel)
			secured.POST("/me/appointments/draft", appointmentHandler.BulkResetToDraft)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
