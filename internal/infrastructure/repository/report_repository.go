package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/medantra/hospital-api/internal/domain/entity"
	domainRepo "github.com/medantra/hospital-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// particularCondition builds the item-name predicate. Catalog IDs resolve to
// the stored particular name for an exact match; free text matches as a
// case-insensitive substring.
func (r *reportRepository) particularCondition(ctx context.Context, filter *domainRepo.ParticularItemFilter) (string, interface{}, error) {
	if filter.ParticularID == nil {
		return "particular ILIKE ?", "%" + filter.Name + "%", nil
	}

	var particular entity.Particular
	err := r.db.WithContext(ctx).First(&particular, "id = ?", *filter.ParticularID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Legacy items store the raw numeric id as the particular text
		return "particular = ?", strconv.FormatUint(uint64(*filter.ParticularID), 10), nil
	}
	if err != nil {
		return "", nil, err
	}
	return "particular = ?", particular.Name, nil
}

func (r *reportRepository) ListMatchingOPItems(ctx context.Context, filter *domainRepo.ParticularItemFilter) ([]entity.OPBillItem, error) {
	cond, arg, err := r.particularCondition(ctx, filter)
	if err != nil {
		return nil, err
	}

	var items []entity.OPBillItem
	err = r.db.WithContext(ctx).
		Joins("JOIN op_bills ON op_bills.id = op_bill_items.bill_id").
		Where("op_bill_items."+cond, arg).
		Where("op_bills.bill_date BETWEEN ? AND ?", filter.Start, filter.End).
		Preload("Bill").
		Preload("Bill.Patient").
		Preload("Doctor").
		Order("op_bills.bill_date DESC").
		Find(&items).Error
	return items, err
}

func (r *reportRepository) ListMatchingIPItems(ctx context.Context, filter *domainRepo.ParticularItemFilter) ([]entity.IPBillItem, error) {
	cond, arg, err := r.particularCondition(ctx, filter)
	if err != nil {
		return nil, err
	}

	var items []entity.IPBillItem
	err = r.db.WithContext(ctx).
		Joins("JOIN ip_bills ON ip_bills.id = ip_bill_items.bill_id").
		Where("ip_bill_items."+cond, arg).
		Where("ip_bills.bill_date BETWEEN ? AND ?", filter.Start, filter.End).
		Preload("Bill").
		Preload("Bill.Patient").
		Preload("Bill.Doctor").
		Order("ip_bills.bill_date DESC").
		Find(&items).Error
	return items, err
}

func (r *reportRepository) DistinctOPParticulars(ctx context.Context, search string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&entity.OPBillItem{}).
		Distinct("particular").
		Where("particular ILIKE ?", "%"+search+"%").
		Pluck("particular", &names).Error
	return names, err
}

func (r *reportRepository) DistinctIPParticulars(ctx context.Context, search string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&entity.IPBillItem{}).
		Distinct("particular").
		Where("particular ILIKE ?", "%"+search+"%").
		Pluck("particular", &names).Error
	return names, err
}
