package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// FormatBillNumber builds a bill number like "OP20240131-0042" from the
// prefix, the bill date and a four-digit sequence.
func FormatBillNumber(prefix string, date time.Time, seq int) string {
	return fmt.Sprintf("%s%s-%04d", prefix, date.Format("20060102"), seq)
}

// FormatRegistrationNumber builds an OP/IP registration number like
// "202401-000042" from the registration month and a six-digit sequence.
func FormatRegistrationNumber(date time.Time, seq int) string {
	return fmt.Sprintf("%s-%06d", date.Format("200601"), seq)
}

// FormatDoctorCode builds a doctor code like "DR1042"
func FormatDoctorCode(seq int) string {
	return fmt.Sprintf("DR%04d", seq)
}
