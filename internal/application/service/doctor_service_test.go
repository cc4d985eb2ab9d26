package service

import (
	"context"
	"testing"

	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/pkg/apperror"
	"github.com/stretchr/testify/require"
)

func TestCreateDoctorGeneratesCode(t *testing.T) {
	doctorRepo := newFakeDoctorRepo()
	svc := NewDoctorService(doctorRepo, &fixedSequence{values: []int{1}})

	doctor, err := svc.CreateDoctor(context.Background(), &DoctorInput{Name: "Dr. Menon"})
	require.NoError(t, err)
	require.Equal(t, "DR1000", doctor.Code)
	require.Equal(t, 30, doctor.OPValidity)
	require.Equal(t, 50, doctor.MaxTokens)
}

func TestCreateDoctorKeepsGivenCode(t *testing.T) {
	doctorRepo := newFakeDoctorRepo()
	svc := NewDoctorService(doctorRepo, nil)

	doctor, err := svc.CreateDoctor(context.Background(), &DoctorInput{
		Code:       "DR0007",
		Name:       "Dr. Nair",
		OPValidity: 15,
		MaxTokens:  25,
	})
	require.NoError(t, err)
	require.Equal(t, "DR0007", doctor.Code)
	require.Equal(t, 15, doctor.OPValidity)
	require.Equal(t, 25, doctor.MaxTokens)
}

func TestCreateDoctorDuplicateCodeConflicts(t *testing.T) {
	doctorRepo := newFakeDoctorRepo()
	doctorRepo.add(&entity.Doctor{Code: "DR1001", Name: "Dr. Menon"})
	svc := NewDoctorService(doctorRepo, nil)

	_, err := svc.CreateDoctor(context.Background(), &DoctorInput{Code: "DR1001", Name: "Dr. Nair"})
	require.Error(t, err)
	require.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateDoctorCodeHeldByAnother(t *testing.T) {
	doctorRepo := newFakeDoctorRepo()
	doctorRepo.add(&entity.Doctor{Code: "DR1001", Name: "Dr. Menon"})
	target := doctorRepo.add(&entity.Doctor{Code: "DR1002", Name: "Dr. Nair"})
	svc := NewDoctorService(doctorRepo, nil)

	_, err := svc.UpdateDoctor(context.Background(), target.ID, &DoctorInput{Code: "DR1001", Name: "Dr. Nair"})
	require.Error(t, err)
	require.Equal(t, 409, apperror.GetAppError(err).Code)
}
