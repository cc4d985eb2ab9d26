package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	domainRepo "github.com/medantra/hospital-api/internal/domain/repository"
	"github.com/medantra/hospital-api/pkg/pagination"
	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new patient repository
func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Preload("Doctor").First(&patient, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &patient, err
}

func (r *patientRepository) GetByOPNumber(ctx context.Context, opNumber string) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Preload("Doctor").First(&patient, "op_number = ?", opNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &patient, err
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, isIP *bool) ([]entity.Patient, int64, error) {
	var patients []entity.Patient
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Patient{})
	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR op_number ILIKE ? OR ip_number ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if isIP != nil {
		query = query.Where("is_ip = ?", *isIP)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Doctor").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("registration_date DESC").
		Find(&patients).Error

	return patients, total, err
}

func (r *patientRepository) ListRegisteredBetween(ctx context.Context, start, end time.Time, isIP *bool) ([]entity.Patient, error) {
	var patients []entity.Patient

	query := r.db.WithContext(ctx).
		Where("registration_date BETWEEN ? AND ?", start, end)
	if isIP != nil {
		query = query.Where("is_ip = ?", *isIP)
	}

	err := query.Preload("Doctor").
		Order("registration_date DESC").
		Find(&patients).Error
	return patients, err
}

func (r *patientRepository) Search(ctx context.Context, q string, isIP bool) ([]entity.Patient, error) {
	var patients []entity.Patient

	pattern := "%" + q + "%"
	err := r.db.WithContext(ctx).
		Where("is_ip = ?", isIP).
		Where("name ILIKE ? OR phone ILIKE ? OR op_number ILIKE ? OR ip_number ILIKE ? OR place ILIKE ?",
			pattern, pattern, pattern, pattern, pattern).
		Preload("Doctor").
		Order("registration_date DESC").
		Find(&patients).Error
	return patients, err
}

func (r *patientRepository) CountRegisteredOn(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Patient{}).
		Where("DATE(registration_date) = DATE(?)", day).
		Count(&count).Error
	return count, err
}
