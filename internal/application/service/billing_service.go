package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/internal/domain/enum"
	"github.com/medantra/hospital-api/internal/domain/repository"
	"github.com/medantra/hospital-api/pkg/apperror"
	"github.com/medantra/hospital-api/pkg/utils"
	"gorm.io/gorm"
)

const billSequenceMax = 9999

// BillingService assembles and persists OP and IP bills
type BillingService struct {
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	billRepo    repository.BillRepository
	now         Clock
	seq         SequenceSource
}

// NewBillingService creates a new billing service. Passing nil for now or seq
// selects the wall clock and the default random sequence.
func NewBillingService(
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	billRepo repository.BillRepository,
	now Clock,
	seq SequenceSource,
) *BillingService {
	if now == nil {
		now = time.Now
	}
	if seq == nil {
		seq = NewRandomSequence()
	}
	return &BillingService{
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		billRepo:    billRepo,
		now:         now,
		seq:         seq,
	}
}

// OPBillItemInput represents one priced line on an OP bill request
type OPBillItemInput struct {
	Particular      string
	DoctorID        *uuid.UUID
	Department      *string
	Unit            int
	Rate            float64
	DiscountPercent float64
}

// CreateOPBillInput represents the OP bill creation input
type CreateOPBillInput struct {
	PatientID    uuid.UUID
	DoctorID     uuid.UUID
	BillType     *string
	Category     *string
	DiscountType *string
	Items        []OPBillItemInput
	CreatedBy    string
}

// CreateOPBill validates the referenced patient and doctor, prices each item,
// sums the header totals and persists header and items in one transaction.
// An empty item list yields a zero-amount bill.
func (s *BillingService) CreateOPBill(ctx context.Context, input *CreateOPBillInput) (*entity.OPBill, error) {
	patient, err := s.patientRepo.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	doctor, err := s.doctorRepo.GetByID(ctx, input.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewNotFoundError("Doctor")
	}

	var totalAmount, discountAmount float64
	items := make([]entity.OPBillItem, 0, len(input.Items))
	for _, in := range input.Items {
		amount := float64(in.Unit) * in.Rate
		discount := amount * in.DiscountPercent / 100
		totalAmount += amount
		discountAmount += discount

		items = append(items, entity.OPBillItem{
			Particular:      in.Particular,
			DoctorID:        in.DoctorID,
			Department:      in.Department,
			Unit:            in.Unit,
			Rate:            in.Rate,
			Amount:          amount,
			DiscountPercent: in.DiscountPercent,
			DiscountAmount:  discount,
			Total:           amount - discount,
		})
	}

	bill := &entity.OPBill{
		BillDate:       s.now(),
		PatientID:      input.PatientID,
		BillType:       input.BillType,
		Category:       input.Category,
		DoctorID:       input.DoctorID,
		DiscountType:   input.DiscountType,
		TotalAmount:    totalAmount,
		DiscountAmount: discountAmount,
		NetAmount:      totalAmount - discountAmount,
		CreatedBy:      input.CreatedBy,
		Items:          items,
	}

	err = s.withFreshBillNumber(enum.BillKindOP, bill.BillDate, func(number string) error {
		bill.BillNumber = number
		return s.billRepo.CreateOPBill(ctx, bill)
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// IPBillItemInput represents one flat-amount line on an IP bill request
type IPBillItemInput struct {
	Particular      string
	Department      *string
	Amount          float64
	DiscountPercent float64
}

// CreateIPBillInput represents the IP bill creation input
type CreateIPBillInput struct {
	PatientID        uuid.UUID
	DoctorID         uuid.UUID
	Room             *string
	AdmissionDate    *time.Time
	IsCredit         bool
	IsInsurance      bool
	InsuranceCompany *string
	ThirdParty       *string
	Category         *string
	DiscountType     *string
	ServiceTax       float64
	EducationCess    float64
	SHEEducationCess float64
	Items            []IPBillItemInput
	CreatedBy        string
}

// CreateIPBill prices the flat-amount items and adds the three cess components
// on top of total - discount to form the net amount.
func (s *BillingService) CreateIPBill(ctx context.Context, input *CreateIPBillInput) (*entity.IPBill, error) {
	patient, err := s.patientRepo.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	doctor, err := s.doctorRepo.GetByID(ctx, input.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewNotFoundError("Doctor")
	}

	var totalAmount, discountAmount float64
	items := make([]entity.IPBillItem, 0, len(input.Items))
	for _, in := range input.Items {
		discount := in.Amount * in.DiscountPercent / 100
		totalAmount += in.Amount
		discountAmount += discount

		items = append(items, entity.IPBillItem{
			Particular:      in.Particular,
			Department:      in.Department,
			Amount:          in.Amount,
			DiscountPercent: in.DiscountPercent,
			DiscountAmount:  discount,
			Total:           in.Amount - discount,
		})
	}

	netAmount := totalAmount - discountAmount +
		input.ServiceTax + input.EducationCess + input.SHEEducationCess

	bill := &entity.IPBill{
		BillDate:         s.now(),
		PatientID:        input.PatientID,
		DoctorID:         input.DoctorID,
		Room:             input.Room,
		AdmissionDate:    input.AdmissionDate,
		IsCredit:         input.IsCredit,
		IsInsurance:      input.IsInsurance,
		InsuranceCompany: input.InsuranceCompany,
		ThirdParty:       input.ThirdParty,
		Category:         input.Category,
		DiscountType:     input.DiscountType,
		TotalAmount:      totalAmount,
		DiscountAmount:   discountAmount,
		ServiceTax:       input.ServiceTax,
		EducationCess:    input.EducationCess,
		SHEEducationCess: input.SHEEducationCess,
		NetAmount:        netAmount,
		CreatedBy:        input.CreatedBy,
		Items:            items,
	}

	err = s.withFreshBillNumber(enum.BillKindIP, bill.BillDate, func(number string) error {
		bill.BillNumber = number
		return s.billRepo.CreateIPBill(ctx, bill)
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// withFreshBillNumber runs create with a generated bill number. Generated
// numbers can collide under the unique index, so one regeneration is attempted
// before the collision surfaces as a conflict.
func (s *BillingService) withFreshBillNumber(kind enum.BillKind, date time.Time, create func(number string) error) error {
	err := create(utils.FormatBillNumber(kind.Prefix(), date, s.seq.Next(billSequenceMax)))
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	err = create(utils.FormatBillNumber(kind.Prefix(), date, s.seq.Next(billSequenceMax)))
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflictError("Bill number already exists")
	}
	return err
}

// GetOPBill returns an OP bill with its items, patient and doctor
func (s *BillingService) GetOPBill(ctx context.Context, id uuid.UUID) (*entity.OPBill, error) {
	bill, err := s.billRepo.GetOPBillByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// GetIPBill returns an IP bill with its items, patient and doctor
func (s *BillingService) GetIPBill(ctx context.Context, id uuid.UUID) (*entity.IPBill, error) {
	bill, err := s.billRepo.GetIPBillByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// TodayOPBills returns the OP bills dated today
func (s *BillingService) TodayOPBills(ctx context.Context) ([]entity.OPBill, error) {
	start, end := dayBounds(s.now())
	return s.billRepo.ListOPBillsBetween(ctx, start, end)
}

// TodayIPBills returns the IP bills dated today
func (s *BillingService) TodayIPBills(ctx context.Context) ([]entity.IPBill, error) {
	start, end := dayBounds(s.now())
	return s.billRepo.ListIPBillsBetween(ctx, start, end)
}

// dayBounds returns the inclusive start and end of the calendar day of t
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24*time.Hour - time.Nanosecond)
}
