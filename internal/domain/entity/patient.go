package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient represents a registered patient. Every patient gets an OP number at
// registration; inpatients additionally carry an IP number and a room.
type Patient struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OPNumber         string         `gorm:"size:20;uniqueIndex;not null" json:"op_number"`
	IPNumber         *string        `gorm:"size:20;uniqueIndex" json:"ip_number,omitempty"`
	RegistrationDate time.Time      `gorm:"type:date;not null" json:"registration_date"`
	Name             string         `gorm:"size:100;not null;index" json:"name"`
	Age              string         `gorm:"size:20" json:"age"`
	Gender           string         `gorm:"size:10" json:"gender"`
	Complaint        *string        `gorm:"size:255" json:"complaint,omitempty"`
	House            *string        `gorm:"size:100" json:"house,omitempty"`
	Street           *string        `gorm:"size:100" json:"street,omitempty"`
	Place            *string        `gorm:"size:100" json:"place,omitempty"`
	Phone            *string        `gorm:"size:20;index" json:"phone,omitempty"`
	DoctorID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"doctor_id"`
	ReferredBy       *string        `gorm:"size:100" json:"referred_by,omitempty"`
	Room             *string        `gorm:"size:20" json:"room,omitempty"`
	IsIP             bool           `gorm:"default:false;index" json:"is_ip"`
	CreatedBy        string         `gorm:"size:100" json:"created_by"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// BeforeCreate generates a UUID before creating a new patient
func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Patient model
func (Patient) TableName() string {
	return "patients"
}
