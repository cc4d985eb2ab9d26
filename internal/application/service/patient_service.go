package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/internal/domain/repository"
	"github.com/medantra/hospital-api/pkg/apperror"
	"github.com/medantra/hospital-api/pkg/pagination"
	"github.com/medantra/hospital-api/pkg/utils"
)

const registrationSequenceMax = 999999

// PatientService handles patient registration and lookup
type PatientService struct {
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	now         Clock
	seq         SequenceSource
}

// NewPatientService creates a new patient service. Passing nil for now or seq
// selects the wall clock and the default random sequence.
func NewPatientService(
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	now Clock,
	seq SequenceSource,
) *PatientService {
	if now == nil {
		now = time.Now
	}
	if seq == nil {
		seq = NewRandomSequence()
	}
	return &PatientService{
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		now:         now,
		seq:         seq,
	}
}

// RegisterPatientInput represents the patient registration input
type RegisterPatientInput struct {
	Name       string
	Age        string
	Gender     string
	Complaint  *string
	House      *string
	Street     *string
	Place      *string
	Phone      *string
	DoctorID   uuid.UUID
	ReferredBy *string
	Room       *string
	IsIP       bool
	CreatedBy  string
}

// RegisterPatient validates the consulting doctor, assigns an OP number (and
// an IP number for admissions) and stores the patient.
func (s *PatientService) RegisterPatient(ctx context.Context, input *RegisterPatientInput) (*entity.Patient, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, input.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewNotFoundError("Doctor")
	}

	registeredAt := s.now()
	patient := &entity.Patient{
		OPNumber:         utils.FormatRegistrationNumber(registeredAt, s.seq.Next(registrationSequenceMax)),
		RegistrationDate: registeredAt,
		Name:             input.Name,
		Age:              input.Age,
		Gender:           input.Gender,
		Complaint:        input.Complaint,
		House:            input.House,
		Street:           input.Street,
		Place:            input.Place,
		Phone:            input.Phone,
		DoctorID:         input.DoctorID,
		ReferredBy:       input.ReferredBy,
		Room:             input.Room,
		IsIP:             input.IsIP,
		CreatedBy:        input.CreatedBy,
	}
	if input.IsIP {
		ipNumber := utils.FormatRegistrationNumber(registeredAt, s.seq.Next(registrationSequenceMax))
		patient.IPNumber = &ipNumber
	}

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// GetPatient returns a patient by ID
func (s *PatientService) GetPatient(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}
	return patient, nil
}

// ListPatients returns a page of patients matching the search text and
// admission filter
func (s *PatientService) ListPatients(ctx context.Context, params *pagination.PaginationParams, search string, isIP *bool) ([]entity.Patient, *pagination.Pagination, error) {
	params.Validate()
	patients, total, err := s.patientRepo.List(ctx, params, search, isIP)
	if err != nil {
		return nil, nil, err
	}
	return patients, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// SearchPatients matches the query against name, number and address fields of
// outpatients or inpatients. No match is reported as not found so billing
// screens can prompt for registration.
func (s *PatientService) SearchPatients(ctx context.Context, query string, isIP bool) ([]entity.Patient, error) {
	patients, err := s.patientRepo.Search(ctx, query, isIP)
	if err != nil {
		return nil, err
	}
	if len(patients) == 0 {
		return nil, apperror.NewNotFoundError("Patient")
	}
	return patients, nil
}
