package request

// RegisterPatientRequest represents the patient registration payload
type RegisterPatientRequest struct {
	Name       string  `json:"name" binding:"required"`
	Age        string  `json:"age"`
	Gender     string  `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Complaint  *string `json:"complaint"`
	House      *string `json:"house"`
	Street     *string `json:"street"`
	Place      *string `json:"place"`
	Phone      *string `json:"phone"`
	DoctorID   string  `json:"doctor_id" binding:"required,uuid"`
	ReferredBy *string `json:"referred_by"`
	Room       *string `json:"room"`
	IsIP       bool    `json:"is_ip"`
}
