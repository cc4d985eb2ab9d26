package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/internal/domain/repository"
	"github.com/medantra/hospital-api/pkg/apperror"
	"github.com/medantra/hospital-api/pkg/utils"
)

// DoctorService manages the doctor master
type DoctorService struct {
	doctorRepo repository.DoctorRepository
	seq        SequenceSource
}

// NewDoctorService creates a new doctor service
func NewDoctorService(doctorRepo repository.DoctorRepository, seq SequenceSource) *DoctorService {
	if seq == nil {
		seq = NewRandomSequence()
	}
	return &DoctorService{doctorRepo: doctorRepo, seq: seq}
}

// DoctorInput carries the doctor master fields for create and update
type DoctorInput struct {
	Code            string
	Name            string
	Address         *string
	Qualification   *string
	Phone           *string
	Email           *string
	Specialty       *string
	Department      *string
	OPValidity      int
	BookingCode     *string
	MaxTokens       int
	IsResigned      bool
	IsDiscontinued  bool
	ResignationDate *time.Time
	DoctorAmount    float64
	HospitalAmount  float64
	DoctorRevisit   float64
	HospitalRevisit float64
	FromTime        *string
	ToTime          *string
}

// CreateDoctor stores a new doctor. A missing code is generated; a duplicate
// code is a conflict.
func (s *DoctorService) CreateDoctor(ctx context.Context, input *DoctorInput) (*entity.Doctor, error) {
	code := input.Code
	if code == "" {
		// Sequence range 1000..9999 keeps generated codes four digits
		code = utils.FormatDoctorCode(s.seq.Next(9000) + 999)
	}

	existing, err := s.doctorRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Doctor code already exists")
	}

	doctor := &entity.Doctor{
		Code:            code,
		Name:            input.Name,
		Address:         input.Address,
		Qualification:   input.Qualification,
		Phone:           input.Phone,
		Email:           input.Email,
		Specialty:       input.Specialty,
		Department:      input.Department,
		OPValidity:      input.OPValidity,
		BookingCode:     input.BookingCode,
		MaxTokens:       input.MaxTokens,
		IsResigned:      input.IsResigned,
		IsDiscontinued:  input.IsDiscontinued,
		ResignationDate: input.ResignationDate,
		DoctorAmount:    input.DoctorAmount,
		HospitalAmount:  input.HospitalAmount,
		DoctorRevisit:   input.DoctorRevisit,
		HospitalRevisit: input.HospitalRevisit,
		FromTime:        input.FromTime,
		ToTime:          input.ToTime,
	}
	if doctor.OPValidity == 0 {
		doctor.OPValidity = 30
	}
	if doctor.MaxTokens == 0 {
		doctor.MaxTokens = 50
	}

	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// GetDoctor returns a doctor by ID
func (s *DoctorService) GetDoctor(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewNotFoundError("Doctor")
	}
	return doctor, nil
}

// UpdateDoctor applies the input to an existing doctor. Changing the code to
// one held by another doctor is a conflict.
func (s *DoctorService) UpdateDoctor(ctx context.Context, id uuid.UUID, input *DoctorInput) (*entity.Doctor, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewNotFoundError("Doctor")
	}

	if input.Code != "" && input.Code != doctor.Code {
		existing, err := s.doctorRepo.GetByCode(ctx, input.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != doctor.ID {
			return nil, apperror.NewConflictError("Doctor code already exists")
		}
		doctor.Code = input.Code
	}

	if input.Name != "" {
		doctor.Name = input.Name
	}
	doctor.Address = input.Address
	doctor.Qualification = input.Qualification
	doctor.Phone = input.Phone
	doctor.Email = input.Email
	doctor.Specialty = input.Specialty
	doctor.Department = input.Department
	if input.OPValidity > 0 {
		doctor.OPValidity = input.OPValidity
	}
	doctor.BookingCode = input.BookingCode
	if input.MaxTokens > 0 {
		doctor.MaxTokens = input.MaxTokens
	}
	doctor.IsResigned = input.IsResigned
	doctor.IsDiscontinued = input.IsDiscontinued
	doctor.ResignationDate = input.ResignationDate
	doctor.DoctorAmount = input.DoctorAmount
	doctor.HospitalAmount = input.HospitalAmount
	doctor.DoctorRevisit = input.DoctorRevisit
	doctor.HospitalRevisit = input.HospitalRevisit
	doctor.FromTime = input.FromTime
	doctor.ToTime = input.ToTime

	if err := s.doctorRepo.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// DeleteDoctor removes a doctor from the master
func (s *DoctorService) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doctor == nil {
		return apperror.NewNotFoundError("Doctor")
	}
	return s.doctorRepo.Delete(ctx, id)
}

// ListDoctors returns doctors matching the search text, optionally only those
// still consulting
func (s *DoctorService) ListDoctors(ctx context.Context, search string, activeOnly bool) ([]entity.Doctor, error) {
	return s.doctorRepo.List(ctx, search, activeOnly)
}
