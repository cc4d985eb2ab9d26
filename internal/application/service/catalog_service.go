package service

import (
	"context"

	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/internal/domain/repository"
	"github.com/medantra/hospital-api/pkg/apperror"
)

// CatalogService manages the charge master of departments and particulars
type CatalogService struct {
	departmentRepo repository.DepartmentRepository
	particularRepo repository.ParticularRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	departmentRepo repository.DepartmentRepository,
	particularRepo repository.ParticularRepository,
) *CatalogService {
	return &CatalogService{
		departmentRepo: departmentRepo,
		particularRepo: particularRepo,
	}
}

// CreateDepartment stores a new department; duplicate names are a conflict
func (s *CatalogService) CreateDepartment(ctx context.Context, name string) (*entity.Department, error) {
	existing, err := s.departmentRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Department already exists")
	}

	department := &entity.Department{Name: name}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// ListDepartments returns all departments
func (s *CatalogService) ListDepartments(ctx context.Context) ([]entity.Department, error) {
	return s.departmentRepo.List(ctx)
}

// DeleteDepartment removes a department that has no particulars left
func (s *CatalogService) DeleteDepartment(ctx context.Context, id uint) error {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if department == nil {
		return apperror.NewNotFoundError("Department")
	}

	count, err := s.particularRepo.CountByDepartment(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.NewBadRequestError("Department has particulars and cannot be deleted")
	}

	return s.departmentRepo.Delete(ctx, id)
}

// CreateParticularInput represents the charge-master entry input
type CreateParticularInput struct {
	Name         string
	DepartmentID uint
	Rate         float64
}

// CreateParticular stores a new particular under a department; names are
// unique within the department.
func (s *CatalogService) CreateParticular(ctx context.Context, input *CreateParticularInput) (*entity.Particular, error) {
	department, err := s.departmentRepo.GetByID(ctx, input.DepartmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, apperror.NewNotFoundError("Department")
	}

	existing, err := s.particularRepo.GetByName(ctx, input.DepartmentID, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Particular already exists in this department")
	}

	particular := &entity.Particular{
		Name:         input.Name,
		DepartmentID: input.DepartmentID,
		Rate:         input.Rate,
	}
	if err := s.particularRepo.Create(ctx, particular); err != nil {
		return nil, err
	}
	return particular, nil
}

// ListParticulars returns particulars, optionally restricted to a department
func (s *CatalogService) ListParticulars(ctx context.Context, departmentID *uint) ([]entity.Particular, error) {
	return s.particularRepo.List(ctx, departmentID)
}

// DeleteParticular removes a charge-master entry
func (s *CatalogService) DeleteParticular(ctx context.Context, id uint) error {
	particular, err := s.particularRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if particular == nil {
		return apperror.NewNotFoundError("Particular")
	}
	return s.particularRepo.Delete(ctx, id)
}

// CatalogStats summarizes the size of the charge master
type CatalogStats struct {
	Departments int64 `json:"departments"`
	Particulars int64 `json:"particulars"`
}

// GetStats returns catalog counts
func (s *CatalogService) GetStats(ctx context.Context) (*CatalogStats, error) {
	departments, err := s.departmentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	particulars, err := s.particularRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &CatalogStats{Departments: departments, Particulars: particulars}, nil
}
