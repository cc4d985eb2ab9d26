package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/internal/domain/enum"
	"github.com/medantra/hospital-api/internal/domain/repository"
	"github.com/medantra/hospital-api/pkg/apperror"
)

// ReportService aggregates billing and registration data into the front-desk
// reports. All grouping happens in memory over rows fetched by the
// repositories, so date ranges where start is after end simply yield empty
// results.
type ReportService struct {
	billRepo    repository.BillRepository
	patientRepo repository.PatientRepository
	reportRepo  repository.ReportRepository
	now         Clock
}

// NewReportService creates a new report service
func NewReportService(
	billRepo repository.BillRepository,
	patientRepo repository.PatientRepository,
	reportRepo repository.ReportRepository,
	now Clock,
) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{
		billRepo:    billRepo,
		patientRepo: patientRepo,
		reportRepo:  reportRepo,
		now:         now,
	}
}

// DailyOPReport returns the OP bills for one calendar day, defaulting to today
func (s *ReportService) DailyOPReport(ctx context.Context, day *time.Time) ([]entity.OPBill, error) {
	d := s.now()
	if day != nil {
		d = *day
	}
	start, end := dayBounds(d)
	return s.billRepo.ListOPBillsBetween(ctx, start, end)
}

// BillSummary is the combined OP/IP billing summary for a date range
type BillSummary struct {
	OPBills       []entity.OPBill `json:"op_bills"`
	IPBills       []entity.IPBill `json:"ip_bills"`
	TotalOPAmount float64         `json:"total_op_amount"`
	TotalIPAmount float64         `json:"total_ip_amount"`
	TotalAmount   float64         `json:"total_amount"`
}

// GetBillSummary returns the bills and net revenue totals for [start, end],
// defaulting to the last seven days.
func (s *ReportService) GetBillSummary(ctx context.Context, start, end *time.Time) (*BillSummary, error) {
	from, to := s.rangeOrDefault(start, end, 7)

	opBills, err := s.billRepo.ListOPBillsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	ipBills, err := s.billRepo.ListIPBillsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	summary := &BillSummary{OPBills: opBills, IPBills: ipBills}
	for _, b := range opBills {
		summary.TotalOPAmount += b.NetAmount
	}
	for _, b := range ipBills {
		summary.TotalIPAmount += b.NetAmount
	}
	summary.TotalAmount = summary.TotalOPAmount + summary.TotalIPAmount
	return summary, nil
}

// GetPatientList returns patients registered in [start, end], defaulting to
// the last thirty days, optionally filtered by admission status.
func (s *ReportService) GetPatientList(ctx context.Context, start, end *time.Time, isIP *bool) ([]entity.Patient, error) {
	from, to := s.rangeOrDefault(start, end, 30)
	return s.patientRepo.ListRegisteredBetween(ctx, from, to, isIP)
}

// ParticularsQuery selects items for the particulars report. Exactly one of
// Name or ParticularID should be set; ParticularID resolves through the charge
// master for an exact match while Name matches as a substring.
type ParticularsQuery struct {
	Name           string
	ParticularID   *uint
	Start          *time.Time
	End            *time.Time
	IncludeOP      bool
	IncludeIP      bool
	GroupByPatient bool
}

// ParticularDetail is one matched bill item flattened with its bill, patient
// and doctor context. IP items synthesize quantity 1 and rate = amount.
type ParticularDetail struct {
	BillType        enum.BillKind `json:"bill_type"`
	BillNumber      string        `json:"bill_number"`
	BillDate        time.Time     `json:"bill_date"`
	PatientID       uuid.UUID     `json:"patient_id"`
	PatientName     string        `json:"patient_name"`
	PatientAge      string        `json:"patient_age"`
	PatientGender   string        `json:"patient_gender"`
	DoctorID        *uuid.UUID    `json:"doctor_id,omitempty"`
	DoctorName      string        `json:"doctor_name"`
	Room            *string       `json:"room,omitempty"`
	Particular      string        `json:"particular"`
	Department      *string       `json:"department,omitempty"`
	Quantity        int           `json:"quantity"`
	Rate            float64       `json:"rate"`
	Amount          float64       `json:"amount"`
	DiscountPercent float64       `json:"discount_percent"`
	DiscountAmount  float64       `json:"discount_amount"`
	Total           float64       `json:"total"`
	CreatedAt       time.Time     `json:"created_at"`
}

// DateSummary aggregates matched items per calendar day
type DateSummary struct {
	Date        string  `json:"date"`
	OPCount     int     `json:"op_count"`
	IPCount     int     `json:"ip_count"`
	TotalAmount float64 `json:"total_amount"`
}

// DoctorSummary aggregates matched items per doctor
type DoctorSummary struct {
	DoctorName  string  `json:"doctor_name"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

// PatientGroup re-partitions the matched items by patient
type PatientGroup struct {
	PatientID     uuid.UUID          `json:"patient_id"`
	PatientName   string             `json:"patient_name"`
	PatientAge    string             `json:"patient_age"`
	PatientGender string             `json:"patient_gender"`
	TotalCount    int                `json:"total_count"`
	TotalAmount   float64            `json:"total_amount"`
	Details       []ParticularDetail `json:"details"`
}

// ParticularsReport is the full particulars report payload
type ParticularsReport struct {
	ParticularName   string             `json:"particular_name"`
	StartDate        string             `json:"start_date"`
	EndDate          string             `json:"end_date"`
	TotalCount       int                `json:"total_count"`
	TotalAmount      float64            `json:"total_amount"`
	OPDetails        []ParticularDetail `json:"op_details"`
	IPDetails        []ParticularDetail `json:"ip_details"`
	SummaryByDate    []DateSummary      `json:"summary_by_date"`
	SummaryByDoctor  []DoctorSummary    `json:"summary_by_doctor"`
	GroupedByPatient []PatientGroup     `json:"grouped_by_patient,omitempty"`
}

// GetParticularsReport builds the usage report for one particular across OP
// and IP bills in a date range, defaulting to the last thirty days.
func (s *ReportService) GetParticularsReport(ctx context.Context, query *ParticularsQuery) (*ParticularsReport, error) {
	if !query.IncludeOP && !query.IncludeIP {
		return nil, apperror.NewBadRequestError("Must include at least OP or IP bills")
	}

	from, to := s.rangeOrDefault(query.Start, query.End, 30)
	filter := &repository.ParticularItemFilter{
		Name:         query.Name,
		ParticularID: query.ParticularID,
		Start:        from,
		End:          to,
	}

	report := &ParticularsReport{
		ParticularName:  query.Name,
		StartDate:       from.Format("2006-01-02"),
		EndDate:         to.Format("2006-01-02"),
		OPDetails:       []ParticularDetail{},
		IPDetails:       []ParticularDetail{},
		SummaryByDate:   []DateSummary{},
		SummaryByDoctor: []DoctorSummary{},
	}

	if query.IncludeOP {
		items, err := s.reportRepo.ListMatchingOPItems(ctx, filter)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			report.OPDetails = append(report.OPDetails, opDetail(item))
		}
	}

	if query.IncludeIP {
		items, err := s.reportRepo.ListMatchingIPItems(ctx, filter)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			report.IPDetails = append(report.IPDetails, ipDetail(item))
		}
	}

	all := append(append([]ParticularDetail{}, report.OPDetails...), report.IPDetails...)
	for _, d := range all {
		report.TotalCount++
		report.TotalAmount += d.Total
	}

	report.SummaryByDate = summarizeByDate(all)
	report.SummaryByDoctor = summarizeByDoctor(all)
	if query.GroupByPatient {
		report.GroupedByPatient = groupByPatient(all)
	}

	return report, nil
}

func opDetail(item entity.OPBillItem) ParticularDetail {
	quantity := item.Unit
	if quantity == 0 {
		quantity = 1
	}
	d := ParticularDetail{
		BillType:        enum.BillKindOP,
		BillNumber:      item.Bill.BillNumber,
		BillDate:        item.Bill.BillDate,
		PatientID:       item.Bill.PatientID,
		PatientName:     item.Bill.Patient.Name,
		PatientAge:      item.Bill.Patient.Age,
		PatientGender:   item.Bill.Patient.Gender,
		DoctorID:        item.DoctorID,
		Particular:      item.Particular,
		Department:      item.Department,
		Quantity:        quantity,
		Rate:            item.Rate,
		Amount:          item.Amount,
		DiscountPercent: item.DiscountPercent,
		DiscountAmount:  item.DiscountAmount,
		Total:           item.Total,
		CreatedAt:       item.CreatedAt,
	}
	if item.Doctor != nil {
		d.DoctorName = item.Doctor.Name
	}
	return d
}

func ipDetail(item entity.IPBillItem) ParticularDetail {
	doctorID := item.Bill.DoctorID
	return ParticularDetail{
		BillType:        enum.BillKindIP,
		BillNumber:      item.Bill.BillNumber,
		BillDate:        item.Bill.BillDate,
		PatientID:       item.Bill.PatientID,
		PatientName:     item.Bill.Patient.Name,
		PatientAge:      item.Bill.Patient.Age,
		PatientGender:   item.Bill.Patient.Gender,
		DoctorID:        &doctorID,
		DoctorName:      item.Bill.Doctor.Name,
		Room:            item.Bill.Room,
		Particular:      item.Particular,
		Department:      item.Department,
		Quantity:        1,
		Rate:            item.Amount,
		Amount:          item.Amount,
		DiscountPercent: item.DiscountPercent,
		DiscountAmount:  item.DiscountAmount,
		Total:           item.Total,
		CreatedAt:       item.CreatedAt,
	}
}

// summarizeByDate merges OP and IP details into per-day counts and totals,
// newest day first.
func summarizeByDate(details []ParticularDetail) []DateSummary {
	byDate := make(map[string]*DateSummary)
	for _, d := range details {
		key := d.BillDate.Format("2006-01-02")
		entry, ok := byDate[key]
		if !ok {
			entry = &DateSummary{Date: key}
			byDate[key] = entry
		}
		if d.BillType == enum.BillKindOP {
			entry.OPCount++
		} else {
			entry.IPCount++
		}
		entry.TotalAmount += d.Total
	}

	summaries := make([]DateSummary, 0, len(byDate))
	for _, entry := range byDate {
		summaries = append(summaries, *entry)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date > summaries[j].Date
	})
	return summaries
}

// summarizeByDoctor groups all details by doctor name, OP items under the
// item's doctor and IP items under the bill's doctor, sorted by name.
func summarizeByDoctor(details []ParticularDetail) []DoctorSummary {
	byDoctor := make(map[string]*DoctorSummary)
	for _, d := range details {
		if d.DoctorName == "" {
			continue
		}
		entry, ok := byDoctor[d.DoctorName]
		if !ok {
			entry = &DoctorSummary{DoctorName: d.DoctorName}
			byDoctor[d.DoctorName] = entry
		}
		entry.Count++
		entry.TotalAmount += d.Total
	}

	summaries := make([]DoctorSummary, 0, len(byDoctor))
	for _, entry := range byDoctor {
		summaries = append(summaries, *entry)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].DoctorName < summaries[j].DoctorName
	})
	return summaries
}

// groupByPatient re-partitions the details by patient, preserving first-seen
// order.
func groupByPatient(details []ParticularDetail) []PatientGroup {
	byPatient := make(map[uuid.UUID]*PatientGroup)
	order := make([]uuid.UUID, 0)
	for _, d := range details {
		group, ok := byPatient[d.PatientID]
		if !ok {
			group = &PatientGroup{
				PatientID:     d.PatientID,
				PatientName:   d.PatientName,
				PatientAge:    d.PatientAge,
				PatientGender: d.PatientGender,
			}
			byPatient[d.PatientID] = group
			order = append(order, d.PatientID)
		}
		group.TotalCount++
		group.TotalAmount += d.Total
		group.Details = append(group.Details, d)
	}

	groups := make([]PatientGroup, 0, len(order))
	for _, id := range order {
		groups = append(groups, *byPatient[id])
	}
	return groups
}

// ParticularsList is the autocomplete payload. Count reflects all distinct
// matches, Particulars is capped at the requested limit.
type ParticularsList struct {
	Particulars []string `json:"particulars"`
	Count       int      `json:"count"`
}

// GetParticularsList returns distinct particular names used on OP or IP bills
// matching the search text, sorted and deduplicated.
func (s *ReportService) GetParticularsList(ctx context.Context, search string, limit int) (*ParticularsList, error) {
	if limit <= 0 {
		limit = 50
	}

	opNames, err := s.reportRepo.DistinctOPParticulars(ctx, search)
	if err != nil {
		return nil, err
	}
	ipNames, err := s.reportRepo.DistinctIPParticulars(ctx, search)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	merged := make([]string, 0, len(opNames)+len(ipNames))
	for _, name := range append(opNames, ipNames...) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		merged = append(merged, name)
	}
	sort.Strings(merged)

	count := len(merged)
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return &ParticularsList{Particulars: merged, Count: count}, nil
}

// rangeOrDefault fills missing range ends with [today - days, today] and
// widens the bounds to whole calendar days.
func (s *ReportService) rangeOrDefault(start, end *time.Time, days int) (time.Time, time.Time) {
	today := s.now()
	from := today.AddDate(0, 0, -days)
	if start != nil {
		from = *start
	}
	to := today
	if end != nil {
		to = *end
	}
	fromStart, _ := dayBounds(from)
	_, toEnd := dayBounds(to)
	return fromStart, toEnd
}
