package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/internal/domain/enum"
	"github.com/medantra/hospital-api/internal/domain/repository"
	"github.com/medantra/hospital-api/pkg/apperror"
)

// AppointmentService manages token bookings
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
	}
}

// CreateAppointmentInput represents the appointment booking input
type CreateAppointmentInput struct {
	AppointmentDate time.Time
	PatientID       uuid.UUID
	DoctorID        uuid.UUID
	TokenNumber     int
	Notes           *string
	CreatedBy       string
}

// CreateAppointment books a token after checking the patient and doctor exist
// and the token is free for that doctor and day.
func (s *AppointmentService) CreateAppointment(ctx context.Context, input *CreateAppointmentInput) (*entity.Appointment, error) {
	patient, err := s.patientRepo.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	doctor, err := s.doctorRepo.GetByID(ctx, input.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewNotFoundError("Doctor")
	}

	if input.TokenNumber < 1 || input.TokenNumber > doctor.MaxTokens {
		return nil, apperror.NewBadRequestError("Token number out of range for this doctor")
	}

	taken, err := s.appointmentRepo.GetByDoctorDayToken(ctx, input.DoctorID, input.AppointmentDate, input.TokenNumber)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, apperror.NewConflictError("Token number already booked for this doctor")
	}

	appointment := &entity.Appointment{
		AppointmentDate: input.AppointmentDate,
		PatientID:       input.PatientID,
		DoctorID:        input.DoctorID,
		TokenNumber:     input.TokenNumber,
		Status:          enum.AppointmentScheduled,
		Notes:           input.Notes,
		CreatedBy:       input.CreatedBy,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// ListAppointments returns appointments matching the filter with patient and
// doctor resolved
func (s *AppointmentService) ListAppointments(ctx context.Context, filter *repository.AppointmentFilter) ([]entity.Appointment, error) {
	return s.appointmentRepo.List(ctx, filter)
}

// UpdateStatus moves an appointment to a new lifecycle state
func (s *AppointmentService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.AppointmentStatus) (*entity.Appointment, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid appointment status")
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}

	appointment.Status = status
	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// DeleteAppointment cancels a booking outright
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return apperror.NewNotFoundError("Appointment")
	}
	return s.appointmentRepo.Delete(ctx, id)
}
