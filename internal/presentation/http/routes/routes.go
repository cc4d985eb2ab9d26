package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medantra/hospital-api/internal/config"
	domainRepo "github.com/medantra/hospital-api/internal/domain/repository"
	"github.com/medantra/hospital-api/internal/presentation/http/handler"
	"github.com/medantra/hospital-api/internal/presentation/http/middleware"
	"github.com/medantra/hospital-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Patient     *handler.PatientHandler
	Doctor      *handler.DoctorHandler
	Bill        *handler.BillHandler
	Report      *handler.ReportHandler
	Appointment *handler.AppointmentHandler
	Catalog     *handler.CatalogHandler
	Dashboard   *handler.DashboardHandler
	User        *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile routes
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard/stats", h.Dashboard.Stats)

	// Patients
	registerPatientRoutes(protected, h)

	// Doctors
	registerDoctorRoutes(protected, h)

	// Bills
	registerBillRoutes(protected, h, deps)

	// Reports
	registerReportRoutes(protected, h)

	// Appointments
	registerAppointmentRoutes(protected, h)

	// Charge master catalog
	registerCatalogRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerPatientRoutes(protected *gin.RouterGroup, h *Handlers) {
	patients := protected.Group("/patients")
	{
		patients.GET("", h.Patient.List)
		patients.POST("", h.Patient.Register)
		patients.GET("/search/op", h.Patient.SearchOP)
		patients.GET("/search/ip", h.Patient.SearchIP)
		patients.GET("/:id", h.Patient.Get)
	}
}

func registerDoctorRoutes(protected *gin.RouterGroup, h *Handlers) {
	doctors := protected.Group("/doctors")
	{
		doctors.GET("", h.Doctor.List)
		doctors.POST("", h.Doctor.Create)
		doctors.GET("/:id", h.Doctor.Get)
		doctors.PUT("/:id", h.Doctor.Update)
		doctors.DELETE("/:id", h.Doctor.Delete)
	}
}

func registerBillRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	bills := protected.Group("/bills")
	{
		// Bill creation uses idempotency middleware so a retried submission
		// cannot produce a second bill
		idempotency := middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		})
		bills.POST("/op", idempotency, h.Bill.CreateOPBill)
		bills.POST("/ip", idempotency, h.Bill.CreateIPBill)
		bills.GET("/op/today", h.Bill.TodayOPBills)
		bills.GET("/ip/today", h.Bill.TodayIPBills)
		bills.GET("/op/:id", h.Bill.GetOPBill)
		bills.GET("/ip/:id", h.Bill.GetIPBill)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/daily-op", h.Report.DailyOP)
		reports.GET("/bill-summary", h.Report.BillSummary)
		reports.GET("/patient-list", h.Report.PatientList)
		reports.GET("/particulars", h.Report.Particulars)
		reports.GET("/particulars-list", h.Report.ParticularsList)
	}
}

func registerAppointmentRoutes(protected *gin.RouterGroup, h *Handlers) {
	appointments := protected.Group("/appointments")
	{
		appointments.GET("", h.Appointment.List)
		appointments.POST("", h.Appointment.Create)
		appointments.PATCH("/:id/status", h.Appointment.UpdateStatus)
		appointments.DELETE("/:id", h.Appointment.Delete)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	catalog := protected.Group("/catalog")
	{
		catalog.GET("/departments", h.Catalog.ListDepartments)
		catalog.POST("/departments", h.Catalog.CreateDepartment)
		catalog.DELETE("/departments/:id", h.Catalog.DeleteDepartment)
		catalog.GET("/particulars", h.Catalog.ListParticulars)
		catalog.POST("/particulars", h.Catalog.CreateParticular)
		catalog.DELETE("/particulars/:id", h.Catalog.DeleteParticular)
		catalog.GET("/stats", h.Catalog.Stats)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole("admin"))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.PATCH("/:id/deactivate", h.User.Deactivate)
		users.DELETE("/:id", h.User.Delete)
	}
}
