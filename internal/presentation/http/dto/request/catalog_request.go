package request

// CreateDepartmentRequest represents the department creation payload
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateParticularRequest represents the charge-master entry payload
type CreateParticularRequest struct {
	Name         string  `json:"name" binding:"required"`
	DepartmentID uint    `json:"department_id" binding:"required"`
	Rate         float64 `json:"rate" binding:"min=0"`
}
