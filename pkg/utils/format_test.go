package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatBillNumber(t *testing.T) {
	date := time.Date(2024, 1, 31, 15, 4, 5, 0, time.UTC)
	require.Equal(t, "OP20240131-0042", FormatBillNumber("OP", date, 42))
	require.Equal(t, "IP20240131-9999", FormatBillNumber("IP", date, 9999))
}

func TestFormatRegistrationNumber(t *testing.T) {
	date := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "202401-000042", FormatRegistrationNumber(date, 42))
}

func TestFormatDoctorCode(t *testing.T) {
	require.Equal(t, "DR1042", FormatDoctorCode(1042))
	require.Equal(t, "DR0007", FormatDoctorCode(7))
}
