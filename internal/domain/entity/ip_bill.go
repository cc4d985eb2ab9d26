package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IPBill represents an inpatient bill header. Net amount includes the three
// statutory cess components on top of total - discount.
type IPBill struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BillNumber       string         `gorm:"size:20;uniqueIndex;not null" json:"bill_number"`
	BillDate         time.Time      `gorm:"not null;index" json:"bill_date"`
	PatientID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Room             *string        `gorm:"size:20" json:"room,omitempty"`
	AdmissionDate    *time.Time     `gorm:"type:date" json:"admission_date,omitempty"`
	IsCredit         bool           `gorm:"default:false" json:"is_credit"`
	IsInsurance      bool           `gorm:"default:false" json:"is_insurance"`
	InsuranceCompany *string        `gorm:"size:100" json:"insurance_company,omitempty"`
	ThirdParty       *string        `gorm:"size:100" json:"third_party,omitempty"`
	Category         *string        `gorm:"size:50" json:"category,omitempty"`
	DiscountType     *string        `gorm:"size:20" json:"discount_type,omitempty"`
	TotalAmount      float64        `gorm:"default:0" json:"total_amount"`
	DiscountAmount   float64        `gorm:"default:0" json:"discount_amount"`
	ServiceTax       float64        `gorm:"default:0" json:"service_tax"`
	EducationCess    float64        `gorm:"default:0" json:"education_cess"`
	SHEEducationCess float64        `gorm:"default:0" json:"she_education_cess"`
	NetAmount        float64        `gorm:"default:0" json:"net_amount"`
	CreatedBy        string         `gorm:"size:100" json:"created_by"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Patient Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor       `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Items   []IPBillItem `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *IPBill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the IPBill model
func (IPBill) TableName() string {
	return "ip_bills"
}

// IPBillItem represents a flat-amount line on an inpatient bill
type IPBillItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BillID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"bill_id"`
	Particular      string         `gorm:"size:255;not null;index" json:"particular"`
	DoctorID        *uuid.UUID     `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	Department      *string        `gorm:"size:100" json:"department,omitempty"`
	Amount          float64        `gorm:"default:0" json:"amount"`
	DiscountPercent float64        `gorm:"default:0" json:"discount_percent"`
	DiscountAmount  float64        `gorm:"default:0" json:"discount_amount"`
	Total           float64        `gorm:"default:0" json:"total"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Bill   IPBill  `gorm:"foreignKey:BillID" json:"-"`
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (i *IPBillItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the IPBillItem model
func (IPBillItem) TableName() string {
	return "ip_bill_items"
}
