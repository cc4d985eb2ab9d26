package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/application/service"
	"github.com/medantra/hospital-api/internal/presentation/http/dto/request"
	"github.com/medantra/hospital-api/internal/presentation/http/dto/response"
	"github.com/medantra/hospital-api/pkg/pagination"
)

// PatientHandler handles patient registry endpoints
type PatientHandler struct {
	patientService *service.PatientService
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// Register handles POST /patients
func (h *PatientHandler) Register(c *gin.Context) {
	var req request.RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		response.BadRequest(c, "Invalid doctor ID")
		return
	}

	patient, err := h.patientService.RegisterPatient(c.Request.Context(), &service.RegisterPatientInput{
		Name:       req.Name,
		Age:        req.Age,
		Gender:     req.Gender,
		Complaint:  req.Complaint,
		House:      req.House,
		Street:     req.Street,
		Place:      req.Place,
		Phone:      req.Phone,
		DoctorID:   doctorID,
		ReferredBy: req.ReferredBy,
		Room:       req.Room,
		IsIP:       req.IsIP,
		CreatedBy:  GetUserFullName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Patient registered successfully", patient)
}

// Get handles GET /patients/:id
func (h *PatientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid patient ID")
		return
	}

	patient, err := h.patientService.GetPatient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Patient retrieved", patient)
}

// List handles GET /patients
func (h *PatientHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	var isIP *bool
	if raw := c.Query("is_ip"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "Invalid is_ip, expected true or false")
			return
		}
		isIP = &v
	}

	patients, page, err := h.patientService.ListPatients(c.Request.Context(), &params, c.Query("search"), isIP)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Patients retrieved", pagination.NewPaginatedResult(patients, page))
}

// SearchOP handles GET /patients/search/op
func (h *PatientHandler) SearchOP(c *gin.Context) {
	h.search(c, false)
}

// SearchIP handles GET /patients/search/ip
func (h *PatientHandler) SearchIP(c *gin.Context) {
	h.search(c, true)
}

func (h *PatientHandler) search(c *gin.Context, isIP bool) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Search query is required")
		return
	}

	patients, err := h.patientService.SearchPatients(c.Request.Context(), query, isIP)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Patients retrieved", patients)
}
