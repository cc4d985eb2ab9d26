package repository

import (
	"context"

	"github.com/medantra/hospital-api/internal/domain/entity"
)

// DepartmentRepository defines the interface for charge-master departments
type DepartmentRepository interface {
	Create(ctx context.Context, department *entity.Department) error
	GetByID(ctx context.Context, id uint) (*entity.Department, error)
	GetByName(ctx context.Context, name string) (*entity.Department, error)
	List(ctx context.Context) ([]entity.Department, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// ParticularRepository defines the interface for charge-master particulars
type ParticularRepository interface {
	Create(ctx context.Context, particular *entity.Particular) error
	GetByID(ctx context.Context, id uint) (*entity.Particular, error)
	GetByName(ctx context.Context, departmentID uint, name string) (*entity.Particular, error)
	// List returns particulars with their department preloaded, optionally
	// restricted to one department.
	List(ctx context.Context, departmentID *uint) ([]entity.Particular, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountByDepartment(ctx context.Context, departmentID uint) (int64, error)
}
