package service

import (
	"context"
	"time"

	"github.com/medantra/hospital-api/internal/domain/enum"
	"github.com/medantra/hospital-api/internal/domain/repository"
)

// DashboardService assembles the front-desk landing stats
type DashboardService struct {
	patientRepo     repository.PatientRepository
	billRepo        repository.BillRepository
	appointmentRepo repository.AppointmentRepository
	now             Clock
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	patientRepo repository.PatientRepository,
	billRepo repository.BillRepository,
	appointmentRepo repository.AppointmentRepository,
	now Clock,
) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{
		patientRepo:     patientRepo,
		billRepo:        billRepo,
		appointmentRepo: appointmentRepo,
		now:             now,
	}
}

// DashboardStats carries today's front-desk numbers
type DashboardStats struct {
	TodayRegistrations  int64   `json:"today_registrations"`
	TodayOPBills        int64   `json:"today_op_bills"`
	TodayIPBills        int64   `json:"today_ip_bills"`
	TodayRevenue        float64 `json:"today_revenue"`
	PendingAppointments int64   `json:"pending_appointments"`
}

// GetStats returns today's registrations, bill counts, net revenue and the
// scheduled appointments from today onward.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	today := s.now()
	dayStart, _ := dayBounds(today)

	registrations, err := s.patientRepo.CountRegisteredOn(ctx, today)
	if err != nil {
		return nil, err
	}

	opBills, err := s.billRepo.CountOPBillsOn(ctx, today)
	if err != nil {
		return nil, err
	}
	ipBills, err := s.billRepo.CountIPBillsOn(ctx, today)
	if err != nil {
		return nil, err
	}

	opNet, ipNet, err := s.billRepo.SumNetAmountsOn(ctx, today)
	if err != nil {
		return nil, err
	}

	pending, err := s.appointmentRepo.CountByStatusFrom(ctx, enum.AppointmentScheduled, dayStart)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TodayRegistrations:  registrations,
		TodayOPBills:        opBills,
		TodayIPBills:        ipBills,
		TodayRevenue:        opNet + ipNet,
		PendingAppointments: pending,
	}, nil
}
