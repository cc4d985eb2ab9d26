package enum

// AppointmentStatus represents the lifecycle state of an appointment token
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Scheduled"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
	AppointmentNoShow    AppointmentStatus = "No Show"
)

// IsValid checks if the appointment status is valid
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// String returns the string representation of the appointment status
func (s AppointmentStatus) String() string {
	return string(s)
}

// AllAppointmentStatuses returns the valid appointment statuses
func AllAppointmentStatuses() []AppointmentStatus {
	return []AppointmentStatus{
		AppointmentScheduled,
		AppointmentCompleted,
		AppointmentCancelled,
		AppointmentNoShow,
	}
}
