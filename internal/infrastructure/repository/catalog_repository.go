package repository

import (
	"context"
	"errors"

	"github.com/medantra/hospital-api/internal/domain/entity"
	domainRepo "github.com/medantra/hospital-api/internal/domain/repository"
	"gorm.io/gorm"
)

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) domainRepo.DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *entity.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

func (r *departmentRepository) GetByID(ctx context.Context, id uint) (*entity.Department, error) {
	var department entity.Department
	err := r.db.WithContext(ctx).First(&department, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &department, err
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*entity.Department, error) {
	var department entity.Department
	err := r.db.WithContext(ctx).First(&department, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &department, err
}

func (r *departmentRepository) List(ctx context.Context) ([]entity.Department, error) {
	var departments []entity.Department
	err := r.db.WithContext(ctx).Order("name ASC").Find(&departments).Error
	return departments, err
}

func (r *departmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Department{}, "id = ?", id).Error
}

func (r *departmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Department{}).Count(&count).Error
	return count, err
}

type particularRepository struct {
	db *gorm.DB
}

// NewParticularRepository creates a new particular repository
func NewParticularRepository(db *gorm.DB) domainRepo.ParticularRepository {
	return &particularRepository{db: db}
}

func (r *particularRepository) Create(ctx context.Context, particular *entity.Particular) error {
	return r.db.WithContext(ctx).Create(particular).Error
}

func (r *particularRepository) GetByID(ctx context.Context, id uint) (*entity.Particular, error) {
	var particular entity.Particular
	err := r.db.WithContext(ctx).Preload("Department").First(&particular, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &particular, err
}

func (r *particularRepository) GetByName(ctx context.Context, departmentID uint, name string) (*entity.Particular, error) {
	var particular entity.Particular
	err := r.db.WithContext(ctx).
		First(&particular, "department_id = ? AND name = ?", departmentID, name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &particular, err
}

func (r *particularRepository) List(ctx context.Context, departmentID *uint) ([]entity.Particular, error) {
	var particulars []entity.Particular

	query := r.db.WithContext(ctx).Preload("Department")
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}

	err := query.Order("name ASC").Find(&particulars).Error
	return particulars, err
}

func (r *particularRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Particular{}, "id = ?", id).Error
}

func (r *particularRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Particular{}).Count(&count).Error
	return count, err
}

func (r *particularRepository) CountByDepartment(ctx context.Context, departmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Particular{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}
