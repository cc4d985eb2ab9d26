package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/pkg/pagination"
)

// PatientRepository defines the interface for patient registry operations
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	GetByOPNumber(ctx context.Context, opNumber string) (*entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	// List returns patients with page-based pagination. search matches name,
	// phone, OP number and IP number; isIP filters by admission status when set.
	List(ctx context.Context, params *pagination.PaginationParams, search string, isIP *bool) ([]entity.Patient, int64, error)
	// ListRegisteredBetween returns patients registered in [start, end] with
	// their doctor preloaded, newest first.
	ListRegisteredBetween(ctx context.Context, start, end time.Time, isIP *bool) ([]entity.Patient, error)
	// Search matches the free-text query against name, number and address
	// fields, restricted to outpatients or inpatients.
	Search(ctx context.Context, query string, isIP bool) ([]entity.Patient, error)
	CountRegisteredOn(ctx context.Context, day time.Time) (int64, error)
}
