package request

// DoctorRequest represents the doctor master payload for create and update
type DoctorRequest struct {
	Code            string  `json:"code"`
	Name            string  `json:"name" binding:"required"`
	Address         *string `json:"address"`
	Qualification   *string `json:"qualification"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Specialty       *string `json:"specialty"`
	Department      *string `json:"department"`
	OPValidity      int     `json:"op_validity" binding:"min=0"`
	BookingCode     *string `json:"booking_code"`
	MaxTokens       int     `json:"max_tokens" binding:"min=0"`
	IsResigned      bool    `json:"is_resigned"`
	IsDiscontinued  bool    `json:"is_discontinued"`
	ResignationDate *string `json:"resignation_date"` // YYYY-MM-DD
	DoctorAmount    float64 `json:"doctor_amount" binding:"min=0"`
	HospitalAmount  float64 `json:"hospital_amount" binding:"min=0"`
	DoctorRevisit   float64 `json:"doctor_revisit" binding:"min=0"`
	HospitalRevisit float64 `json:"hospital_revisit" binding:"min=0"`
	FromTime        *string `json:"from_time"`
	ToTime          *string `json:"to_time"`
}
