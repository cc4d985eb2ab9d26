package request

// CreateAppointmentRequest represents the token booking payload
type CreateAppointmentRequest struct {
	AppointmentDate string  `json:"appointment_date" binding:"required"` // YYYY-MM-DD
	PatientID       string  `json:"patient_id" binding:"required,uuid"`
	DoctorID        string  `json:"doctor_id" binding:"required,uuid"`
	TokenNumber     int     `json:"token_number" binding:"required,min=1"`
	Notes           *string `json:"notes"`
}

// UpdateAppointmentStatusRequest represents the status change payload
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
