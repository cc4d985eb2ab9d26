package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/pkg/apperror"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func billingFixture(billRepo *fakeBillRepo, seq []int) (*BillingService, uuid.UUID, uuid.UUID) {
	patientRepo := newFakePatientRepo()
	doctorRepo := newFakeDoctorRepo()
	patient := patientRepo.add(&entity.Patient{Name: "Ravi Kumar", Age: "42", Gender: "Male"})
	doctor := doctorRepo.add(&entity.Doctor{Code: "DR1001", Name: "Dr. Menon"})

	billDate := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	svc := NewBillingService(patientRepo, doctorRepo, billRepo, fixedClock(billDate), &fixedSequence{values: seq})
	return svc, patient.ID, doctor.ID
}

func TestCreateOPBillTotals(t *testing.T) {
	billRepo := &fakeBillRepo{}
	svc, patientID, doctorID := billingFixture(billRepo, []int{42})

	bill, err := svc.CreateOPBill(context.Background(), &CreateOPBillInput{
		PatientID: patientID,
		DoctorID:  doctorID,
		Items: []OPBillItemInput{
			{Particular: "CONSULTATION", Unit: 2, Rate: 100, DiscountPercent: 10},
			{Particular: "DRESSING", Unit: 1, Rate: 50},
		},
		CreatedBy: "Front Desk",
	})
	require.NoError(t, err)

	require.Equal(t, "OP20240115-0042", bill.BillNumber)
	require.InDelta(t, 250.0, bill.TotalAmount, 1e-9)
	require.InDelta(t, 20.0, bill.DiscountAmount, 1e-9)
	require.InDelta(t, 230.0, bill.NetAmount, 1e-9)

	require.Len(t, bill.Items, 2)
	require.InDelta(t, 200.0, bill.Items[0].Amount, 1e-9)
	require.InDelta(t, 20.0, bill.Items[0].DiscountAmount, 1e-9)
	require.InDelta(t, 180.0, bill.Items[0].Total, 1e-9)
	require.InDelta(t, 50.0, bill.Items[1].Total, 1e-9)

	require.Len(t, billRepo.createdOP, 1)
}

func TestCreateOPBillEmptyItems(t *testing.T) {
	svc, patientID, doctorID := billingFixture(&fakeBillRepo{}, []int{7})

	bill, err := svc.CreateOPBill(context.Background(), &CreateOPBillInput{
		PatientID: patientID,
		DoctorID:  doctorID,
	})
	require.NoError(t, err)
	require.Zero(t, bill.TotalAmount)
	require.Zero(t, bill.DiscountAmount)
	require.Zero(t, bill.NetAmount)
	require.Empty(t, bill.Items)
}

func TestCreateOPBillUnknownPatient(t *testing.T) {
	svc, _, doctorID := billingFixture(&fakeBillRepo{}, []int{1})

	_, err := svc.CreateOPBill(context.Background(), &CreateOPBillInput{
		PatientID: uuid.New(),
		DoctorID:  doctorID,
	})
	require.Error(t, err)
	require.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateOPBillUnknownDoctor(t *testing.T) {
	svc, patientID, _ := billingFixture(&fakeBillRepo{}, []int{1})

	_, err := svc.CreateOPBill(context.Background(), &CreateOPBillInput{
		PatientID: patientID,
		DoctorID:  uuid.New(),
	})
	require.Error(t, err)
	require.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateIPBillNetAmount(t *testing.T) {
	billRepo := &fakeBillRepo{}
	svc, patientID, doctorID := billingFixture(billRepo, []int{311})

	bill, err := svc.CreateIPBill(context.Background(), &CreateIPBillInput{
		PatientID: patientID,
		DoctorID:  doctorID,
		Items: []IPBillItemInput{
			{Particular: "ROOM RENT", Amount: 1000, DiscountPercent: 5},
		},
		ServiceTax:       20,
		EducationCess:    2,
		SHEEducationCess: 1,
		CreatedBy:        "Front Desk",
	})
	require.NoError(t, err)

	require.Equal(t, "IP20240115-0311", bill.BillNumber)
	require.InDelta(t, 1000.0, bill.TotalAmount, 1e-9)
	require.InDelta(t, 50.0, bill.DiscountAmount, 1e-9)
	require.InDelta(t, 973.0, bill.NetAmount, 1e-9)
	require.InDelta(t, 950.0, bill.Items[0].Total, 1e-9)
}

func TestCreateOPBillRetriesCollidingNumber(t *testing.T) {
	billRepo := &fakeBillRepo{createErrs: []error{gorm.ErrDuplicatedKey}}
	svc, patientID, doctorID := billingFixture(billRepo, []int{42, 43})

	bill, err := svc.CreateOPBill(context.Background(), &CreateOPBillInput{
		PatientID: patientID,
		DoctorID:  doctorID,
	})
	require.NoError(t, err)
	require.Equal(t, "OP20240115-0043", bill.BillNumber)
}

func TestCreateOPBillSecondCollisionConflicts(t *testing.T) {
	billRepo := &fakeBillRepo{createErrs: []error{gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey}}
	svc, patientID, doctorID := billingFixture(billRepo, []int{42, 43})

	_, err := svc.CreateOPBill(context.Background(), &CreateOPBillInput{
		PatientID: patientID,
		DoctorID:  doctorID,
	})
	require.Error(t, err)
	require.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestGetOPBillNotFound(t *testing.T) {
	svc, _, _ := billingFixture(&fakeBillRepo{}, []int{1})

	_, err := svc.GetOPBill(context.Background(), uuid.New())
	require.Error(t, err)
	require.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestTodayOPBillsUsesDayBounds(t *testing.T) {
	billRepo := &fakeBillRepo{}
	svc, _, _ := billingFixture(billRepo, []int{1})

	_, err := svc.TodayOPBills(context.Background())
	require.NoError(t, err)

	require.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), billRepo.lastStart)
	require.Equal(t, time.Date(2024, 1, 15, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), billRepo.lastEnd)
}
