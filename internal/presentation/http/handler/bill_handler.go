package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/application/service"
	"github.com/medantra/hospital-api/internal/presentation/http/dto/request"
	"github.com/medantra/hospital-api/internal/presentation/http/dto/response"
)

// BillHandler handles OP and IP billing endpoints
type BillHandler struct {
	billingService *service.BillingService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService) *BillHandler {
	return &BillHandler{billingService: billingService}
}

// CreateOPBill handles POST /bills/op
func (h *BillHandler) CreateOPBill(c *gin.Context) {
	var req request.CreateOPBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		response.BadRequest(c, "Invalid patient ID")
		return
	}
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		response.BadRequest(c, "Invalid doctor ID")
		return
	}

	items := make([]service.OPBillItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		item := service.OPBillItemInput{
			Particular:      it.Particular,
			Department:      it.Department,
			Unit:            it.Unit,
			Rate:            it.Rate,
			DiscountPercent: it.DiscountPercent,
		}
		if it.DoctorID != nil {
			id, err := uuid.Parse(*it.DoctorID)
			if err != nil {
				response.BadRequest(c, "Invalid item doctor ID")
				return
			}
			item.DoctorID = &id
		}
		items = append(items, item)
	}

	bill, err := h.billingService.CreateOPBill(c.Request.Context(), &service.CreateOPBillInput{
		PatientID:    patientID,
		DoctorID:     doctorID,
		BillType:     req.BillType,
		Category:     req.Category,
		DiscountType: req.DiscountType,
		Items:        items,
		CreatedBy:    GetUserFullName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "OP Bill created successfully", gin.H{
		"bill_number": bill.BillNumber,
		"bill_id":     bill.ID,
	})
}

// CreateIPBill handles POST /bills/ip
func (h *BillHandler) CreateIPBill(c *gin.Context) {
	var req request.CreateIPBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		response.BadRequest(c, "Invalid patient ID")
		return
	}
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		response.BadRequest(c, "Invalid doctor ID")
		return
	}

	var admissionDate *time.Time
	if req.AdmissionDate != nil {
		d, err := time.Parse("2006-01-02", *req.AdmissionDate)
		if err != nil {
			response.BadRequest(c, "Invalid admission date, expected YYYY-MM-DD")
			return
		}
		admissionDate = &d
	}

	items := make([]service.IPBillItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.IPBillItemInput{
			Particular:      it.Particular,
			Department:      it.Department,
			Amount:          it.Amount,
			DiscountPercent: it.DiscountPercent,
		})
	}

	bill, err := h.billingService.CreateIPBill(c.Request.Context(), &service.CreateIPBillInput{
		PatientID:        patientID,
		DoctorID:         doctorID,
		Room:             req.Room,
		AdmissionDate:    admissionDate,
		IsCredit:         req.IsCredit,
		IsInsurance:      req.IsInsurance,
		InsuranceCompany: req.InsuranceCompany,
		ThirdParty:       req.ThirdParty,
		Category:         req.Category,
		DiscountType:     req.DiscountType,
		ServiceTax:       req.ServiceTax,
		EducationCess:    req.EducationCess,
		SHEEducationCess: req.SHEEducationCess,
		Items:            items,
		CreatedBy:        GetUserFullName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "IP Bill created successfully", gin.H{
		"bill_number": bill.BillNumber,
		"bill_id":     bill.ID,
	})
}

// GetOPBill handles GET /bills/op/:id
func (h *BillHandler) GetOPBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetOPBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved", bill)
}

// GetIPBill handles GET /bills/ip/:id
func (h *BillHandler) GetIPBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetIPBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved", bill)
}

// TodayOPBills handles GET /bills/op/today
func (h *BillHandler) TodayOPBills(c *gin.Context) {
	bills, err := h.billingService.TodayOPBills(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Today's OP bills retrieved", bills)
}

// TodayIPBills handles GET /bills/ip/today
func (h *BillHandler) TodayIPBills(c *gin.Context) {
	bills, err := h.billingService.TodayIPBills(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Today's IP bills retrieved", bills)
}
