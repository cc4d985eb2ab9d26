package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor represents an entry in the doctor master. The amount fields carry the
// consultation fee split between the doctor and the hospital, for first visits
// and revisits.
type Doctor struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code            string         `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name            string         `gorm:"size:100;not null;index" json:"name"`
	Address         *string        `gorm:"size:255" json:"address,omitempty"`
	Qualification   *string        `gorm:"size:100" json:"qualification,omitempty"`
	Phone           *string        `gorm:"size:20" json:"phone,omitempty"`
	Email           *string        `gorm:"size:100" json:"email,omitempty"`
	Specialty       *string        `gorm:"size:100" json:"specialty,omitempty"`
	Department      *string        `gorm:"size:100" json:"department,omitempty"`
	OPValidity      int            `gorm:"default:30" json:"op_validity"`
	BookingCode     *string        `gorm:"size:20" json:"booking_code,omitempty"`
	MaxTokens       int            `gorm:"default:50" json:"max_tokens"`
	IsResigned      bool           `gorm:"default:false" json:"is_resigned"`
	IsDiscontinued  bool           `gorm:"default:false" json:"is_discontinued"`
	ResignationDate *time.Time     `gorm:"type:date" json:"resignation_date,omitempty"`
	DoctorAmount    float64        `gorm:"default:0" json:"doctor_amount"`
	HospitalAmount  float64        `gorm:"default:0" json:"hospital_amount"`
	DoctorRevisit   float64        `gorm:"default:0" json:"doctor_revisit"`
	HospitalRevisit float64        `gorm:"default:0" json:"hospital_revisit"`
	FromTime        *string        `gorm:"size:10" json:"from_time,omitempty"`
	ToTime          *string        `gorm:"size:10" json:"to_time,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new doctor
func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Doctor model
func (Doctor) TableName() string {
	return "doctors"
}

// IsActive reports whether the doctor still consults
func (d *Doctor) IsActive() bool {
	return !d.IsResigned && !d.IsDiscontinued
}

// ConsultationFee returns the total fee for a first visit
func (d *Doctor) ConsultationFee() float64 {
	return d.DoctorAmount + d.HospitalAmount
}

// RevisitFee returns the total fee for a revisit
func (d *Doctor) RevisitFee() float64 {
	return d.DoctorRevisit + d.HospitalRevisit
}
