package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/internal/domain/enum"
	domainRepo "github.com/medantra/hospital-api/internal/domain/repository"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &appointment, err
}

func (r *appointmentRepository) GetByDoctorDayToken(ctx context.Context, doctorID uuid.UUID, day time.Time, token int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND DATE(appointment_date) = DATE(?) AND token_number = ?", doctorID, day, token).
		First(&appointment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &appointment, err
}

func (r *appointmentRepository) List(ctx context.Context, filter *domainRepo.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment

	query := r.db.WithContext(ctx).Model(&entity.Appointment{})
	if filter != nil {
		if filter.Start != nil {
			query = query.Where("appointment_date >= ?", *filter.Start)
		}
		if filter.End != nil {
			query = query.Where("appointment_date <= ?", *filter.End)
		}
		if filter.DoctorID != nil {
			query = query.Where("doctor_id = ?", *filter.DoctorID)
		}
		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}
	}

	err := query.
		Preload("Patient").
		Preload("Doctor").
		Order("appointment_date ASC, token_number ASC").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Appointment{}, "id = ?", id).Error
}

func (r *appointmentRepository) CountByStatusFrom(ctx context.Context, status enum.AppointmentStatus, from time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("status = ? AND appointment_date >= ?", status, from).
		Count(&count).Error
	return count, err
}
