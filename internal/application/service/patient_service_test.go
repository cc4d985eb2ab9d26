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

func TestRegisterPatientAssignsOPNumber(t *testing.T) {
	patientRepo := newFakePatientRepo()
	doctorRepo := newFakeDoctorRepo()
	doctor := doctorRepo.add(&entity.Doctor{Code: "DR1001", Name: "Dr. Menon"})

	registeredAt := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)
	svc := NewPatientService(patientRepo, doctorRepo, fixedClock(registeredAt), &fixedSequence{values: []int{7}})

	patient, err := svc.RegisterPatient(context.Background(), &RegisterPatientInput{
		Name:     "Ravi Kumar",
		Age:      "42",
		Gender:   "Male",
		DoctorID: doctor.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "202401-000007", patient.OPNumber)
	require.Nil(t, patient.IPNumber)
	require.False(t, patient.IsIP)
	require.Len(t, patientRepo.created, 1)
}

func TestRegisterInpatientAlsoGetsIPNumber(t *testing.T) {
	patientRepo := newFakePatientRepo()
	doctorRepo := newFakeDoctorRepo()
	doctor := doctorRepo.add(&entity.Doctor{Code: "DR1001", Name: "Dr. Menon"})

	registeredAt := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)
	svc := NewPatientService(patientRepo, doctorRepo, fixedClock(registeredAt), &fixedSequence{values: []int{7, 8}})

	room := "12A"
	patient, err := svc.RegisterPatient(context.Background(), &RegisterPatientInput{
		Name:     "Meera Pillai",
		Age:      "35",
		Gender:   "Female",
		DoctorID: doctor.ID,
		Room:     &room,
		IsIP:     true,
	})
	require.NoError(t, err)
	require.Equal(t, "202401-000007", patient.OPNumber)
	require.NotNil(t, patient.IPNumber)
	require.Equal(t, "202401-000008", *patient.IPNumber)
}

func TestRegisterPatientUnknownDoctor(t *testing.T) {
	svc := NewPatientService(newFakePatientRepo(), newFakeDoctorRepo(), nil, nil)

	_, err := svc.RegisterPatient(context.Background(), &RegisterPatientInput{
		Name:     "Ravi Kumar",
		DoctorID: uuid.New(),
	})
	require.Error(t, err)
	require.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestSearchPatientsNoMatchIsNotFound(t *testing.T) {
	svc := NewPatientService(newFakePatientRepo(), newFakeDoctorRepo(), nil, nil)

	_, err := svc.SearchPatients(context.Background(), "nobody", false)
	require.Error(t, err)
	require.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestSearchPatientsReturnsMatches(t *testing.T) {
	patientRepo := newFakePatientRepo()
	patientRepo.searchResults = []entity.Patient{{Name: "Ravi Kumar"}}
	svc := NewPatientService(patientRepo, newFakeDoctorRepo(), nil, nil)

	patients, err := svc.SearchPatients(context.Background(), "ravi", false)
	require.NoError(t, err)
	require.Len(t, patients, 1)
}
