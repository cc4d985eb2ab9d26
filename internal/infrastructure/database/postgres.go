package database

import (
	"fmt"
	"log"

	"github.com/medantra/hospital-api/internal/config"
	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Surfaces unique-index violations as gorm.ErrDuplicatedKey so the
		// billing service can regenerate a colliding bill number
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Accounts
		&entity.User{},

		// Masters
		&entity.Doctor{},
		&entity.Department{},
		&entity.Particular{},

		// Registry
		&entity.Patient{},

		// Billing
		&entity.OPBill{},
		&entity.OPBillItem{},
		&entity.IPBill{},
		&entity.IPBillItem{},

		// Front desk
		&entity.Appointment{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the charge-master departments and the admin account
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	departments := []string{
		"GENERAL",
		"LABORATORY",
		"RADIOLOGY",
		"CARDIOLOGY",
		"PHYSIOTHERAPY",
	}
	for _, name := range departments {
		var existing entity.Department
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := db.Create(&entity.Department{Name: name}).Error; err != nil {
				log.Printf("Warning: failed to create department %s: %v", name, err)
			}
		}
	}

	// Create admin user if configured via environment variables
	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminUsername != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("username = ?", adminUsername).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Administrator"
				}
				adminUser := entity.User{
					Username: adminUsername,
					Password: string(hashedPassword),
					FullName: adminName,
					Role:     "admin",
					IsActive: true,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminUsername)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminUsername)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
