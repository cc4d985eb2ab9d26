package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	domainRepo "github.com/medantra/hospital-api/internal/domain/repository"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

// CreateOPBill inserts the header and its items in one transaction via the
// association; a failed item insert rolls back the header.
func (r *billRepository) CreateOPBill(ctx context.Context, bill *entity.OPBill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) CreateIPBill(ctx context.Context, bill *entity.IPBill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) GetOPBillByID(ctx context.Context, id uuid.UUID) (*entity.OPBill, error) {
	var bill entity.OPBill
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Items").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) GetIPBillByID(ctx context.Context, id uuid.UUID) (*entity.IPBill, error) {
	var bill entity.IPBill
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Items").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) ListOPBillsBetween(ctx context.Context, start, end time.Time) ([]entity.OPBill, error) {
	var bills []entity.OPBill
	err := r.db.WithContext(ctx).
		Where("bill_date BETWEEN ? AND ?", start, end).
		Preload("Patient").
		Preload("Doctor").
		Order("bill_date DESC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) ListIPBillsBetween(ctx context.Context, start, end time.Time) ([]entity.IPBill, error) {
	var bills []entity.IPBill
	err := r.db.WithContext(ctx).
		Where("bill_date BETWEEN ? AND ?", start, end).
		Preload("Patient").
		Preload("Doctor").
		Order("bill_date DESC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) CountOPBillsOn(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.OPBill{}).
		Where("DATE(bill_date) = DATE(?)", day).
		Count(&count).Error
	return count, err
}

func (r *billRepository) CountIPBillsOn(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.IPBill{}).
		Where("DATE(bill_date) = DATE(?)", day).
		Count(&count).Error
	return count, err
}

func (r *billRepository) SumNetAmountsOn(ctx context.Context, day time.Time) (float64, float64, error) {
	var opNet, ipNet float64

	err := r.db.WithContext(ctx).Model(&entity.OPBill{}).
		Select("COALESCE(SUM(net_amount), 0)").
		Where("DATE(bill_date) = DATE(?)", day).
		Scan(&opNet).Error
	if err != nil {
		return 0, 0, err
	}

	err = r.db.WithContext(ctx).Model(&entity.IPBill{}).
		Select("COALESCE(SUM(net_amount), 0)").
		Where("DATE(bill_date) = DATE(?)", day).
		Scan(&ipNet).Error
	if err != nil {
		return 0, 0, err
	}

	return opNet, ipNet, nil
}
