package entity

import (
	"time"
)

// Department groups particulars in the charge master
type Department struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Particulars []Particular `gorm:"foreignKey:DepartmentID" json:"particulars,omitempty"`
}

// TableName returns the table name for the Department model
func (Department) TableName() string {
	return "departments"
}

// Particular is a billable service in the charge master. Names are unique
// within a department; the numeric ID is what billing screens submit.
type Particular struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:255;not null;index:idx_particulars_dept_name,unique" json:"name"`
	DepartmentID uint       `gorm:"not null;index:idx_particulars_dept_name,unique" json:"department_id"`
	Rate         float64    `gorm:"default:0" json:"rate"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Department   Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// TableName returns the table name for the Particular model
func (Particular) TableName() string {
	return "particulars"
}
