package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
)

// DoctorRepository defines the interface for doctor master operations
type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	GetByCode(ctx context.Context, code string) (*entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns doctors matching the search text (name, code or specialty).
	// activeOnly excludes resigned and discontinued doctors.
	List(ctx context.Context, search string, activeOnly bool) ([]entity.Doctor, error)
}
