package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	domainRepo "github.com/medantra/hospital-api/internal/domain/repository"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository creates a new doctor repository
func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).First(&doctor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &doctor, err
}

func (r *doctorRepository) GetByCode(ctx context.Context, code string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).First(&doctor, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &doctor, err
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Save(doctor).Error
}

func (r *doctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Doctor{}, "id = ?", id).Error
}

func (r *doctorRepository) List(ctx context.Context, search string, activeOnly bool) ([]entity.Doctor, error) {
	var doctors []entity.Doctor

	query := r.db.WithContext(ctx).Model(&entity.Doctor{})
	if search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ? OR specialty ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if activeOnly {
		query = query.Where("is_resigned = false AND is_discontinued = false")
	}

	err := query.Order("name ASC").Find(&doctors).Error
	return doctors, err
}
