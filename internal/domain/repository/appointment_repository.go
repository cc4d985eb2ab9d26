package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/internal/domain/enum"
)

// AppointmentFilter narrows appointment listings
type AppointmentFilter struct {
	Start    *time.Time
	End      *time.Time
	DoctorID *uuid.UUID
	Status   *enum.AppointmentStatus
}

// AppointmentRepository defines the interface for appointment operations
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	// GetByDoctorDayToken returns the appointment holding a token number for a
	// doctor on a calendar day, or nil when the token is free.
	GetByDoctorDayToken(ctx context.Context, doctorID uuid.UUID, day time.Time, token int) (*entity.Appointment, error)
	// List returns appointments matching the filter with patient and doctor
	// preloaded, ordered by date then token.
	List(ctx context.Context, filter *AppointmentFilter) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatusFrom(ctx context.Context, status enum.AppointmentStatus, from time.Time) (int64, error)
}
