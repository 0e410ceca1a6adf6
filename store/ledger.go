package store

import (
	"strings"
	"sync"

	"elysium/models"
)

// Ledger is the ordered collection of appointments. Entries are created in
// pending status only; the admin console drives all status transitions.
type Ledger interface {
	Create(appt models.Appointment) error
	List() []models.Appointment
	Get(id string) (models.Appointment, bool)
	Transition(id string, status models.AppointmentStatus) error
	SearchByClient(substr string) []models.Appointment
	CountByStatus(status models.AppointmentStatus) int
	CountVIP() int
}

// MemoryLedger is the in-process Ledger. The newest entry is kept first.
type MemoryLedger struct {
	mu           sync.RWMutex
	appointments []models.Appointment
}

func NewMemoryLedger(seed []models.Appointment) *MemoryLedger {
	l := &MemoryLedger{}
	l.appointments = append(l.appointments, seed...)
	return l
}

// Create prepends the appointment. The id must be unique for the process
// lifetime.
func (l *MemoryLedger) Create(appt models.Appointment) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, existing := range l.appointments {
		if existing.ID == appt.ID {
			return ErrDuplicateID
		}
	}
	l.appointments = append([]models.Appointment{appt}, l.appointments...)
	return nil
}

func (l *MemoryLedger) List() []models.Appointment {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Appointment, len(l.appointments))
	copy(out, l.appointments)
	return out
}

func (l *MemoryLedger) Get(id string) (models.Appointment, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, appt := range l.appointments {
		if appt.ID == id {
			return appt, true
		}
	}
	return models.Appointment{}, false
}

// Transition moves a pending appointment to confirmed or cancelled. Any
// other target status, or a current status that is already terminal, is
// rejected with no state change.
func (l *MemoryLedger) Transition(id string, status models.AppointmentStatus) error {
	if status != models.StatusConfirmed && status != models.StatusCancelled {
		return ErrInvalidTransition
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, appt := range l.appointments {
		if appt.ID != id {
			continue
		}
		if appt.Status.Terminal() {
			return ErrTerminalStatus
		}
		l.appointments[i].Status = status
		return nil
	}
	return ErrNotFound
}

// SearchByClient returns appointments whose client name contains substr,
// case-insensitively.
func (l *MemoryLedger) SearchByClient(substr string) []models.Appointment {
	needle := strings.ToLower(substr)
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []models.Appointment
	for _, appt := range l.appointments {
		if strings.Contains(strings.ToLower(appt.ClientName), needle) {
			out = append(out, appt)
		}
	}
	return out
}

func (l *MemoryLedger) CountByStatus(status models.AppointmentStatus) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, appt := range l.appointments {
		if appt.Status == status {
			n++
		}
	}
	return n
}

func (l *MemoryLedger) CountVIP() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, appt := range l.appointments {
		if appt.IsVIP {
			n++
		}
	}
	return n
}
