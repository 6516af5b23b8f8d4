package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jeffry-N/Beiruti-Fade/internal/audit"
	"github.com/Jeffry-N/Beiruti-Fade/internal/cache"
	"github.com/Jeffry-N/Beiruti-Fade/internal/config"
	"github.com/Jeffry-N/Beiruti-Fade/internal/handlers"
	infraRepo "github.com/Jeffry-N/Beiruti-Fade/internal/infra/repository"
	ucAccount "github.com/Jeffry-N/Beiruti-Fade/internal/usecase/account"
	ucAppointment "github.com/Jeffry-N/Beiruti-Fade/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	cacheClient := cache.New(cfg.RedisAddr)

	// ======================================================
	// USE CASES — ACCOUNTS
	// ======================================================
	signupUC := ucAccount.NewSignup(accountRepo, auditDispatcher)
	loginUC := ucAccount.NewLogin(accountRepo)
	getProfileUC := ucAccount.NewGetProfile(accountRepo)
	updateProfileUC := ucAccount.NewUpdateProfile(accountRepo, auditDispatcher)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBook(appointmentRepo, auditDispatcher)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher)
	rescheduleUC := ucAppointment.NewReschedule(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(signupUC, loginUC)
	profileHandler := handlers.NewProfileHandler(getProfileUC, updateProfileUC, cacheClient)
	barberHandler := handlers.NewBarberHandler(accountRepo, cacheClient)
	serviceHandler := handlers.NewServiceHandler(db, cacheClient)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		updateStatusUC,
		rescheduleUC,
		listAppointmentsUC,
		getAppointmentUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// ACCOUNTS
		// ------------------------------
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)

		api.GET("/profile/:type/:id", profileHandler.Get)
		api.PUT("/profile/:type/:id", profileHandler.Update)

		// ------------------------------
		// CATALOG
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Get)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)
		api.PUT("/appointments/:id/reschedule", appointmentHandler.Reschedule)
	}
}
