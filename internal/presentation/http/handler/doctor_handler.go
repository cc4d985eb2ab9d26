package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/application/service"
	"github.com/medantra/hospital-api/internal/presentation/http/dto/request"
	"github.com/medantra/hospital-api/internal/presentation/http/dto/response"
)

// DoctorHandler handles doctor master endpoints
type DoctorHandler struct {
	doctorService *service.DoctorService
}

// NewDoctorHandler creates a new doctor handler
func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

func doctorInputFromRequest(c *gin.Context, req *request.DoctorRequest) (*service.DoctorInput, bool) {
	input := &service.DoctorInput{
		Code:            req.Code,
		Name:            req.Name,
		Address:         req.Address,
		Qualification:   req.Qualification,
		Phone:           req.Phone,
		Email:           req.Email,
		Specialty:       req.Specialty,
		Department:      req.Department,
		OPValidity:      req.OPValidity,
		BookingCode:     req.BookingCode,
		MaxTokens:       req.MaxTokens,
		IsResigned:      req.IsResigned,
		IsDiscontinued:  req.IsDiscontinued,
		DoctorAmount:    req.DoctorAmount,
		HospitalAmount:  req.HospitalAmount,
		DoctorRevisit:   req.DoctorRevisit,
		HospitalRevisit: req.HospitalRevisit,
		FromTime:        req.FromTime,
		ToTime:          req.ToTime,
	}
	if req.ResignationDate != nil {
		d, err := time.Parse("2006-01-02", *req.ResignationDate)
		if err != nil {
			response.BadRequest(c, "Invalid resignation date, expected YYYY-MM-DD")
			return nil, false
		}
		input.ResignationDate = &d
	}
	return input, true
}

// Create handles POST /doctors
func (h *DoctorHandler) Create(c *gin.Context) {
	var req request.DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	input, ok := doctorInputFromRequest(c, &req)
	if !ok {
		return
	}

	doctor, err := h.doctorService.CreateDoctor(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Doctor created successfully", doctor)
}

// Get handles GET /doctors/:id
func (h *DoctorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorService.GetDoctor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Doctor retrieved", doctor)
}

// Update handles PUT /doctors/:id
func (h *DoctorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid doctor ID")
		return
	}

	var req request.DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	input, ok := doctorInputFromRequest(c, &req)
	if !ok {
		return
	}

	doctor, err := h.doctorService.UpdateDoctor(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Doctor updated successfully", doctor)
}

// Delete handles DELETE /doctors/:id
func (h *DoctorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid doctor ID")
		return
	}

	if err := h.doctorService.DeleteDoctor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Doctor deleted successfully", nil)
}

// List handles GET /doctors
func (h *DoctorHandler) List(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	doctors, err := h.doctorService.ListDoctors(c.Request.Context(), c.Query("search"), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Doctors retrieved", doctors)
}
