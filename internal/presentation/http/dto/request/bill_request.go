package request

// OPBillItemRequest represents one priced line on an OP bill request
type OPBillItemRequest struct {
	Particular      string  `json:"particular" binding:"required"`
	DoctorID        *string `json:"doctor_id"`
	Department      *string `json:"department"`
	Unit            int     `json:"unit" binding:"required,min=1"`
	Rate            float64 `json:"rate" binding:"min=0"`
	DiscountPercent float64 `json:"discount_percent" binding:"min=0,max=100"`
}

// CreateOPBillRequest represents the OP bill creation payload. An empty item
// list is accepted and yields a zero-amount bill.
type CreateOPBillRequest struct {
	PatientID    string              `json:"patient_id" binding:"required,uuid"`
	DoctorID     string              `json:"doctor_id" binding:"required,uuid"`
	BillType     *string             `json:"bill_type"`
	Category     *string             `json:"category"`
	DiscountType *string             `json:"discount_type"`
	Items        []OPBillItemRequest `json:"items"`
}

// IPBillItemRequest represents one flat-amount line on an IP bill request
type IPBillItemRequest struct {
	Particular      string  `json:"particular" binding:"required"`
	Department      *string `json:"department"`
	Amount          float64 `json:"amount" binding:"min=0"`
	DiscountPercent float64 `json:"discount_percent" binding:"min=0,max=100"`
}

// CreateIPBillRequest represents the IP bill creation payload
type CreateIPBillRequest struct {
	PatientID        string              `json:"patient_id" binding:"required,uuid"`
	DoctorID         string              `json:"doctor_id" binding:"required,uuid"`
	Room             *string             `json:"room"`
	AdmissionDate    *string             `json:"admission_date"` // YYYY-MM-DD
	IsCredit         bool                `json:"is_credit"`
	IsInsurance      bool                `json:"is_insurance"`
	InsuranceCompany *string             `json:"insurance_company"`
	ThirdParty       *string             `json:"third_party"`
	Category         *string             `json:"category"`
	DiscountType     *string             `json:"discount_type"`
	ServiceTax       float64             `json:"service_tax" binding:"min=0"`
	EducationCess    float64             `json:"education_cess" binding:"min=0"`
	SHEEducationCess float64             `json:"she_education_cess" binding:"min=0"`
	Items            []IPBillItemRequest `json:"items"`
}
