package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/pkg/apperror"
	"github.com/stretchr/testify/require"
)

func reportFixture(reportRepo *fakeReportRepo, billRepo *fakeBillRepo) *ReportService {
	today := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	return NewReportService(billRepo, newFakePatientRepo(), reportRepo, fixedClock(today))
}

func opItemFixture(day time.Time, patient entity.Patient, doctorName string, total float64) entity.OPBillItem {
	item := entity.OPBillItem{
		Particular:     "X-RAY CHEST",
		Unit:           2,
		Rate:           total / 2,
		Amount:         total,
		Total:          total,
		Bill: entity.OPBill{
			BillNumber: "OP20240208-0001",
			BillDate:   day,
			PatientID:  patient.ID,
			Patient:    patient,
		},
	}
	if doctorName != "" {
		doctorID := uuid.New()
		item.DoctorID = &doctorID
		item.Doctor = &entity.Doctor{Name: doctorName}
	}
	return item
}

func ipItemFixture(day time.Time, patient entity.Patient, doctorName string, amount float64) entity.IPBillItem {
	room := "12A"
	return entity.IPBillItem{
		Particular: "X-RAY CHEST",
		Amount:     amount,
		Total:      amount,
		Bill: entity.IPBill{
			BillNumber: "IP20240208-0001",
			BillDate:   day,
			PatientID:  patient.ID,
			Patient:    patient,
			DoctorID:   uuid.New(),
			Doctor:     entity.Doctor{Name: doctorName},
			Room:       &room,
		},
	}
}

func TestParticularsReportTotalsAndDetails(t *testing.T) {
	day := time.Date(2024, 2, 8, 11, 0, 0, 0, time.UTC)
	patient := entity.Patient{ID: uuid.New(), Name: "Ravi Kumar", Age: "42", Gender: "Male"}

	reportRepo := &fakeReportRepo{
		opItems: []entity.OPBillItem{opItemFixture(day, patient, "Dr. Menon", 180)},
		ipItems: []entity.IPBillItem{ipItemFixture(day, patient, "Dr. Nair", 500)},
	}
	svc := reportFixture(reportRepo, &fakeBillRepo{})

	report, err := svc.GetParticularsReport(context.Background(), &ParticularsQuery{
		Name:      "X-RAY",
		IncludeOP: true,
		IncludeIP: true,
	})
	require.NoError(t, err)

	require.Equal(t, 2, report.TotalCount)
	require.InDelta(t, 680.0, report.TotalAmount, 1e-9)
	require.Len(t, report.OPDetails, 1)
	require.Len(t, report.IPDetails, 1)

	// IP items have no unit or rate of their own
	ip := report.IPDetails[0]
	require.Equal(t, 1, ip.Quantity)
	require.InDelta(t, 500.0, ip.Rate, 1e-9)
	require.Equal(t, "Dr. Nair", ip.DoctorName)
	require.NotNil(t, ip.Room)
}

func TestParticularsReportRequiresASide(t *testing.T) {
	svc := reportFixture(&fakeReportRepo{}, &fakeBillRepo{})

	_, err := svc.GetParticularsReport(context.Background(), &ParticularsQuery{Name: "X-RAY"})
	require.Error(t, err)
	require.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestParticularsReportSkipsExcludedSide(t *testing.T) {
	day := time.Date(2024, 2, 8, 11, 0, 0, 0, time.UTC)
	patient := entity.Patient{ID: uuid.New(), Name: "Ravi Kumar"}

	reportRepo := &fakeReportRepo{
		opItems: []entity.OPBillItem{opItemFixture(day, patient, "Dr. Menon", 180)},
		ipItems: []entity.IPBillItem{ipItemFixture(day, patient, "Dr. Nair", 500)},
	}
	svc := reportFixture(reportRepo, &fakeBillRepo{})

	report, err := svc.GetParticularsReport(context.Background(), &ParticularsQuery{
		Name:      "X-RAY",
		IncludeOP: true,
	})
	require.NoError(t, err)
	require.Len(t, report.OPDetails, 1)
	require.Empty(t, report.IPDetails)
	require.Equal(t, 1, report.TotalCount)
}

func TestSummarizeByDateMergesSidesNewestFirst(t *testing.T) {
	day1 := time.Date(2024, 2, 7, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 2, 8, 10, 0, 0, 0, time.UTC)
	patient := entity.Patient{ID: uuid.New(), Name: "Ravi Kumar"}

	reportRepo := &fakeReportRepo{
		opItems: []entity.OPBillItem{
			opItemFixture(day1, patient, "Dr. Menon", 100),
			opItemFixture(day2, patient, "Dr. Menon", 200),
		},
		ipItems: []entity.IPBillItem{ipItemFixture(day1, patient, "Dr. Nair", 300)},
	}
	svc := reportFixture(reportRepo, &fakeBillRepo{})

	report, err := svc.GetParticularsReport(context.Background(), &ParticularsQuery{
		Name:      "X-RAY",
		IncludeOP: true,
		IncludeIP: true,
	})
	require.NoError(t, err)

	require.Len(t, report.SummaryByDate, 2)
	require.Equal(t, "2024-02-08", report.SummaryByDate[0].Date)
	require.Equal(t, 1, report.SummaryByDate[0].OPCount)
	require.Equal(t, 0, report.SummaryByDate[0].IPCount)

	require.Equal(t, "2024-02-07", report.SummaryByDate[1].Date)
	require.Equal(t, 1, report.SummaryByDate[1].OPCount)
	require.Equal(t, 1, report.SummaryByDate[1].IPCount)
	require.InDelta(t, 400.0, report.SummaryByDate[1].TotalAmount, 1e-9)
}

func TestSummarizeByDoctorCoversBothSides(t *testing.T) {
	day := time.Date(2024, 2, 8, 10, 0, 0, 0, time.UTC)
	patient := entity.Patient{ID: uuid.New(), Name: "Ravi Kumar"}

	reportRepo := &fakeReportRepo{
		opItems: []entity.OPBillItem{
			opItemFixture(day, patient, "Dr. Menon", 100),
			opItemFixture(day, patient, "", 50), // no item-level doctor
		},
		ipItems: []entity.IPBillItem{
			ipItemFixture(day, patient, "Dr. Menon", 300),
			ipItemFixture(day, patient, "Dr. Nair", 200),
		},
	}
	svc := reportFixture(reportRepo, &fakeBillRepo{})

	report, err := svc.GetParticularsReport(context.Background(), &ParticularsQuery{
		Name:      "X-RAY",
		IncludeOP: true,
		IncludeIP: true,
	})
	require.NoError(t, err)

	require.Len(t, report.SummaryByDoctor, 2)
	require.Equal(t, "Dr. Menon", report.SummaryByDoctor[0].DoctorName)
	require.Equal(t, 2, report.SummaryByDoctor[0].Count)
	require.InDelta(t, 400.0, report.SummaryByDoctor[0].TotalAmount, 1e-9)
	require.Equal(t, "Dr. Nair", report.SummaryByDoctor[1].DoctorName)
	require.Equal(t, 1, report.SummaryByDoctor[1].Count)
}

func TestGroupByPatientPreservesOrder(t *testing.T) {
	day := time.Date(2024, 2, 8, 10, 0, 0, 0, time.UTC)
	first := entity.Patient{ID: uuid.New(), Name: "Ravi Kumar"}
	second := entity.Patient{ID: uuid.New(), Name: "Meera Pillai"}

	reportRepo := &fakeReportRepo{
		opItems: []entity.OPBillItem{
			opItemFixture(day, first, "Dr. Menon", 100),
			opItemFixture(day, second, "Dr. Menon", 200),
			opItemFixture(day, first, "Dr. Menon", 50),
		},
	}
	svc := reportFixture(reportRepo, &fakeBillRepo{})

	report, err := svc.GetParticularsReport(context.Background(), &ParticularsQuery{
		Name:           "X-RAY",
		IncludeOP:      true,
		GroupByPatient: true,
	})
	require.NoError(t, err)

	require.Len(t, report.GroupedByPatient, 2)
	require.Equal(t, "Ravi Kumar", report.GroupedByPatient[0].PatientName)
	require.Equal(t, 2, report.GroupedByPatient[0].TotalCount)
	require.InDelta(t, 150.0, report.GroupedByPatient[0].TotalAmount, 1e-9)
	require.Equal(t, "Meera Pillai", report.GroupedByPatient[1].PatientName)
}

func TestParticularsReportDefaultRange(t *testing.T) {
	reportRepo := &fakeReportRepo{}
	svc := reportFixture(reportRepo, &fakeBillRepo{})

	_, err := svc.GetParticularsReport(context.Background(), &ParticularsQuery{
		Name:      "X-RAY",
		IncludeOP: true,
	})
	require.NoError(t, err)

	require.Equal(t, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), reportRepo.lastFilter.Start)
	require.Equal(t, "2024-02-10", reportRepo.lastFilter.End.Format("2006-01-02"))
}

func TestGetParticularsListDedupSortAndLimit(t *testing.T) {
	reportRepo := &fakeReportRepo{
		opNames: []string{"X-RAY CHEST", "CBC"},
		ipNames: []string{"CBC", "MRI BRAIN"},
	}
	svc := reportFixture(reportRepo, &fakeBillRepo{})

	list, err := svc.GetParticularsList(context.Background(), "", 50)
	require.NoError(t, err)
	require.Equal(t, []string{"CBC", "MRI BRAIN", "X-RAY CHEST"}, list.Particulars)
	require.Equal(t, 3, list.Count)

	// Count reflects all matches even when the list is truncated
	list, err = svc.GetParticularsList(context.Background(), "", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"CBC", "MRI BRAIN"}, list.Particulars)
	require.Equal(t, 3, list.Count)
}

func TestGetBillSummaryTotals(t *testing.T) {
	billRepo := &fakeBillRepo{
		opBills: []entity.OPBill{{NetAmount: 230}, {NetAmount: 120}},
		ipBills: []entity.IPBill{{NetAmount: 973}},
	}
	svc := reportFixture(&fakeReportRepo{}, billRepo)

	summary, err := svc.GetBillSummary(context.Background(), nil, nil)
	require.NoError(t, err)
	require.InDelta(t, 350.0, summary.TotalOPAmount, 1e-9)
	require.InDelta(t, 973.0, summary.TotalIPAmount, 1e-9)
	require.InDelta(t, 1323.0, summary.TotalAmount, 1e-9)
}

func TestDailyOPReportDefaultsToToday(t *testing.T) {
	billRepo := &fakeBillRepo{}
	svc := reportFixture(&fakeReportRepo{}, billRepo)

	_, err := svc.DailyOPReport(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), billRepo.lastStart)
}
