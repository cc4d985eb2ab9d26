package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/internal/domain/enum"
	"github.com/medantra/hospital-api/internal/domain/repository"
	"github.com/medantra/hospital-api/pkg/pagination"
)

// fixedClock pins the service clock to a single instant
func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// fixedSequence replays a preset list of sequence values
type fixedSequence struct {
	values []int
	idx    int
}

func (s *fixedSequence) Next(max int) int {
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v
}

type fakePatientRepo struct {
	patients      map[uuid.UUID]*entity.Patient
	created       []*entity.Patient
	registered    []entity.Patient
	searchResults []entity.Patient
	registeredOn  int64
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[uuid.UUID]*entity.Patient)}
}

func (r *fakePatientRepo) add(p *entity.Patient) *entity.Patient {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.patients[p.ID] = p
	return p
}

func (r *fakePatientRepo) Create(ctx context.Context, patient *entity.Patient) error {
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	r.patients[patient.ID] = patient
	r.created = append(r.created, patient)
	return nil
}

func (r *fakePatientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	return r.patients[id], nil
}

func (r *fakePatientRepo) GetByOPNumber(ctx context.Context, opNumber string) (*entity.Patient, error) {
	for _, p := range r.patients {
		if p.OPNumber == opNumber {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) Update(ctx context.Context, patient *entity.Patient) error {
	r.patients[patient.ID] = patient
	return nil
}

func (r *fakePatientRepo) List(ctx context.Context, params *pagination.PaginationParams, search string, isIP *bool) ([]entity.Patient, int64, error) {
	return r.searchResults, int64(len(r.searchResults)), nil
}

func (r *fakePatientRepo) ListRegisteredBetween(ctx context.Context, start, end time.Time, isIP *bool) ([]entity.Patient, error) {
	return r.registered, nil
}

func (r *fakePatientRepo) Search(ctx context.Context, query string, isIP bool) ([]entity.Patient, error) {
	return r.searchResults, nil
}

func (r *fakePatientRepo) CountRegisteredOn(ctx context.Context, day time.Time) (int64, error) {
	return r.registeredOn, nil
}

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]*entity.Doctor
	listed  []entity.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[uuid.UUID]*entity.Doctor)}
}

func (r *fakeDoctorRepo) add(d *entity.Doctor) *entity.Doctor {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.doctors[d.ID] = d
	return d
}

func (r *fakeDoctorRepo) Create(ctx context.Context, doctor *entity.Doctor) error {
	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.New()
	}
	r.doctors[doctor.ID] = doctor
	return nil
}

func (r *fakeDoctorRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return r.doctors[id], nil
}

func (r *fakeDoctorRepo) GetByCode(ctx context.Context, code string) (*entity.Doctor, error) {
	for _, d := range r.doctors {
		if d.Code == code {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) Update(ctx context.Context, doctor *entity.Doctor) error {
	r.doctors[doctor.ID] = doctor
	return nil
}

func (r *fakeDoctorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.doctors, id)
	return nil
}

func (r *fakeDoctorRepo) List(ctx context.Context, search string, activeOnly bool) ([]entity.Doctor, error) {
	return r.listed, nil
}

type fakeBillRepo struct {
	opBills []entity.OPBill
	ipBills []entity.IPBill

	// createErrs is drained one error per create call, letting tests simulate
	// unique-index collisions on the generated bill number
	createErrs []error

	createdOP []*entity.OPBill
	createdIP []*entity.IPBill

	opCount int64
	ipCount int64
	opNet   float64
	ipNet   float64

	lastStart time.Time
	lastEnd   time.Time
}

func (r *fakeBillRepo) nextCreateErr() error {
	if len(r.createErrs) == 0 {
		return nil
	}
	err := r.createErrs[0]
	r.createErrs = r.createErrs[1:]
	return err
}

func (r *fakeBillRepo) CreateOPBill(ctx context.Context, bill *entity.OPBill) error {
	if err := r.nextCreateErr(); err != nil {
		return err
	}
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	r.createdOP = append(r.createdOP, bill)
	return nil
}

func (r *fakeBillRepo) CreateIPBill(ctx context.Context, bill *entity.IPBill) error {
	if err := r.nextCreateErr(); err != nil {
		return err
	}
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	r.createdIP = append(r.createdIP, bill)
	return nil
}

func (r *fakeBillRepo) GetOPBillByID(ctx context.Context, id uuid.UUID) (*entity.OPBill, error) {
	for i := range r.opBills {
		if r.opBills[i].ID == id {
			return &r.opBills[i], nil
		}
	}
	return nil, nil
}

func (r *fakeBillRepo) GetIPBillByID(ctx context.Context, id uuid.UUID) (*entity.IPBill, error) {
	for i := range r.ipBills {
		if r.ipBills[i].ID == id {
			return &r.ipBills[i], nil
		}
	}
	return nil, nil
}

func (r *fakeBillRepo) ListOPBillsBetween(ctx context.Context, start, end time.Time) ([]entity.OPBill, error) {
	r.lastStart, r.lastEnd = start, end
	return r.opBills, nil
}

func (r *fakeBillRepo) ListIPBillsBetween(ctx context.Context, start, end time.Time) ([]entity.IPBill, error) {
	r.lastStart, r.lastEnd = start, end
	return r.ipBills, nil
}

func (r *fakeBillRepo) CountOPBillsOn(ctx context.Context, day time.Time) (int64, error) {
	return r.opCount, nil
}

func (r *fakeBillRepo) CountIPBillsOn(ctx context.Context, day time.Time) (int64, error) {
	return r.ipCount, nil
}

func (r *fakeBillRepo) SumNetAmountsOn(ctx context.Context, day time.Time) (float64, float64, error) {
	return r.opNet, r.ipNet, nil
}

type fakeReportRepo struct {
	opItems []entity.OPBillItem
	ipItems []entity.IPBillItem
	opNames []string
	ipNames []string

	lastFilter *repository.ParticularItemFilter
}

func (r *fakeReportRepo) ListMatchingOPItems(ctx context.Context, filter *repository.ParticularItemFilter) ([]entity.OPBillItem, error) {
	r.lastFilter = filter
	return r.opItems, nil
}

func (r *fakeReportRepo) ListMatchingIPItems(ctx context.Context, filter *repository.ParticularItemFilter) ([]entity.IPBillItem, error) {
	r.lastFilter = filter
	return r.ipItems, nil
}

func (r *fakeReportRepo) DistinctOPParticulars(ctx context.Context, search string) ([]string, error) {
	return r.opNames, nil
}

func (r *fakeReportRepo) DistinctIPParticulars(ctx context.Context, search string) ([]string, error) {
	return r.ipNames, nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
	taken        *entity.Appointment
	listed       []entity.Appointment
	pending      int64
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	return r.appointments[id], nil
}

func (r *fakeAppointmentRepo) GetByDoctorDayToken(ctx context.Context, doctorID uuid.UUID, day time.Time, token int) (*entity.Appointment, error) {
	return r.taken, nil
}

func (r *fakeAppointmentRepo) List(ctx context.Context, filter *repository.AppointmentFilter) ([]entity.Appointment, error) {
	return r.listed, nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeAppointmentRepo) CountByStatusFrom(ctx context.Context, status enum.AppointmentStatus, from time.Time) (int64, error) {
	return r.pending, nil
}
