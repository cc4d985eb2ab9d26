package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Appointment represents a booked token for a doctor on a given day. Token
// numbers are unique per doctor and calendar day.
type Appointment struct {
	ID              uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	AppointmentDate time.Time              `gorm:"type:date;not null;index" json:"appointment_date"`
	PatientID       uuid.UUID              `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID              `gorm:"type:uuid;not null;index" json:"doctor_id"`
	TokenNumber     int                    `gorm:"not null" json:"token_number"`
	Status          enum.AppointmentStatus `gorm:"size:20;default:'Scheduled'" json:"status"`
	Notes           *string                `gorm:"size:255" json:"notes,omitempty"`
	CreatedBy       string                 `gorm:"size:100" json:"created_by"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	DeletedAt       gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// BeforeCreate generates a UUID before creating a new appointment
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
