package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/medantra/hospital-api/internal/application/service"
	"github.com/medantra/hospital-api/internal/config"
	"github.com/medantra/hospital-api/internal/infrastructure/database"
	"github.com/medantra/hospital-api/internal/infrastructure/repository"
	"github.com/medantra/hospital-api/internal/presentation/http/handler"
	"github.com/medantra/hospital-api/internal/presentation/http/routes"
	"github.com/medantra/hospital-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	billRepo := repository.NewBillRepository(db)
	reportRepo := repository.NewReportRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	particularRepo := repository.NewParticularRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	patientService := service.NewPatientService(patientRepo, doctorRepo, nil, nil)
	doctorService := service.NewDoctorService(doctorRepo, nil)
	billingService := service.NewBillingService(patientRepo, doctorRepo, billRepo, nil, nil)
	reportService := service.NewReportService(billRepo, patientRepo, reportRepo, nil)
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo)
	catalogService := service.NewCatalogService(departmentRepo, particularRepo)
	dashboardService := service.NewDashboardService(patientRepo, billRepo, appointmentRepo, nil)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Patient:     handler.NewPatientHandler(patientService),
		Doctor:      handler.NewDoctorHandler(doctorService),
		Bill:        handler.NewBillHandler(billingService),
		Report:      handler.NewReportHandler(reportService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Catalog:     handler.NewCatalogHandler(catalogService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		User:        handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
