package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	patientRepo := newFakePatientRepo()
	patientRepo.registeredOn = 5

	billRepo := &fakeBillRepo{opCount: 12, ipCount: 3, opNet: 4600, ipNet: 15200}

	appointmentRepo := newFakeAppointmentRepo()
	appointmentRepo.pending = 7

	today := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	svc := NewDashboardService(patientRepo, billRepo, appointmentRepo, fixedClock(today))

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 5, stats.TodayRegistrations)
	require.EqualValues(t, 12, stats.TodayOPBills)
	require.EqualValues(t, 3, stats.TodayIPBills)
	require.InDelta(t, 19800.0, stats.TodayRevenue, 1e-9)
	require.EqualValues(t, 7, stats.PendingAppointments)
}
