package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/application/service"
	"github.com/medantra/hospital-api/internal/domain/enum"
	"github.com/medantra/hospital-api/internal/domain/repository"
	"github.com/medantra/hospital-api/internal/presentation/http/dto/request"
	"github.com/medantra/hospital-api/internal/presentation/http/dto/response"
)

// AppointmentHandler handles token booking endpoints
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Create handles POST /appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req request.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		response.BadRequest(c, "Invalid appointment date, expected YYYY-MM-DD")
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

	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), &service.CreateAppointmentInput{
		AppointmentDate: date,
		PatientID:       patientID,
		DoctorID:        doctorID,
		TokenNumber:     req.TokenNumber,
		Notes:           req.Notes,
		CreatedBy:       GetUserFullName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Appointment booked successfully", appointment)
}

// List handles GET /appointments
func (h *AppointmentHandler) List(c *gin.Context) {
	filter := &repository.AppointmentFilter{}

	if raw := c.Query("start_date"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		filter.Start = &d
	}
	if raw := c.Query("end_date"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		filter.End = &d
	}
	if raw := c.Query("doctor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid doctor ID")
			return
		}
		filter.DoctorID = &id
	}
	if raw := c.Query("status"); raw != "" {
		status := enum.AppointmentStatus(raw)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid appointment status")
			return
		}
		filter.Status = &status
	}

	appointments, err := h.appointmentService.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointments retrieved", appointments)
}

// UpdateStatus handles PATCH /appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req request.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	appointment, err := h.appointmentService.UpdateStatus(c.Request.Context(), id, enum.AppointmentStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment status updated", appointment)
}

// Delete handles DELETE /appointments/:id
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	if err := h.appointmentService.DeleteAppointment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment deleted successfully", nil)
}
