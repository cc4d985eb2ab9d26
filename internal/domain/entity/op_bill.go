package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OPBill represents an outpatient bill header. The stored totals are the sums
// over the items; net = total - discount.
type OPBill struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BillNumber     string         `gorm:"size:20;uniqueIndex;not null" json:"bill_number"`
	BillDate       time.Time      `gorm:"not null;index" json:"bill_date"`
	PatientID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"patient_id"`
	BillType       *string        `gorm:"size:20" json:"bill_type,omitempty"`
	Category       *string        `gorm:"size:50" json:"category,omitempty"`
	DoctorID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DiscountType   *string        `gorm:"size:20" json:"discount_type,omitempty"`
	TotalAmount    float64        `gorm:"default:0" json:"total_amount"`
	DiscountAmount float64        `gorm:"default:0" json:"discount_amount"`
	NetAmount      float64        `gorm:"default:0" json:"net_amount"`
	CreatedBy      string         `gorm:"size:100" json:"created_by"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Patient Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor       `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Items   []OPBillItem `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *OPBill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OPBill model
func (OPBill) TableName() string {
	return "op_bills"
}

// OPBillItem represents a priced line on an outpatient bill
type OPBillItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BillID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"bill_id"`
	Particular      string         `gorm:"size:255;not null;index" json:"particular"`
	DoctorID        *uuid.UUID     `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	Department      *string        `gorm:"size:100" json:"department,omitempty"`
	Unit            int            `gorm:"default:1" json:"unit"`
	Rate            float64        `gorm:"default:0" json:"rate"`
	Amount          float64        `gorm:"default:0" json:"amount"`
	DiscountPercent float64        `gorm:"default:0" json:"discount_percent"`
	DiscountAmount  float64        `gorm:"default:0" json:"discount_amount"`
	Total           float64        `gorm:"default:0" json:"total"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Bill   OPBill  `gorm:"foreignKey:BillID" json:"-"`
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (i *OPBillItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OPBillItem model
func (OPBillItem) TableName() string {
	return "op_bill_items"
}
