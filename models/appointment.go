package models

// AppointmentStatus is the lifecycle state of a reservation.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transition.
func (s AppointmentStatus) Terminal() bool {
	return s != StatusPending
}

// Appointment is one ledger entry. ServiceName is a display string and may
// carry a discount annotation; ServiceID may be empty when the concierge
// supplied a free-text service name not present in the catalog.
type Appointment struct {
	ID          string            `json:"id"`
	ClientName  string            `json:"clientName"`
	ClientEmail string            `json:"clientEmail"`
	ServiceID   string            `json:"serviceId"`
	ServiceName string            `json:"serviceName"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Status      AppointmentStatus `json:"status"`
	IsVIP       bool              `json:"isVip"`
}
