package store

import (
	"errors"
	"testing"

	"elysium/models"
)

func pendingAppt(id, client string) models.Appointment {
	return models.Appointment{
		ID:          id,
		ClientName:  client,
		ClientEmail: client + "@test.com",
		ServiceID:   "1",
		ServiceName: "Bridal Ethereal Glow",
		Date:        "2024-10-25",
		Time:        "10:00 AM",
		Status:      models.StatusPending,
	}
}

func TestLedger_CreatePrependsNewest(t *testing.T) {
	l := NewMemoryLedger(nil)
	if err := l.Create(pendingAppt("a", "First")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := l.Create(pendingAppt("b", "Second")); err != nil {
		t.Fatalf("create: %v", err)
	}

	list := l.List()
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].ID != "b" || list[1].ID != "a" {
		t.Fatalf("order = [%s %s], want newest first", list[0].ID, list[1].ID)
	}
}

func TestLedger_CreateRejectsDuplicateID(t *testing.T) {
	l := NewMemoryLedger(nil)
	if err := l.Create(pendingAppt("a", "First")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := l.Create(pendingAppt("a", "Clone")); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if len(l.List()) != 1 {
		t.Fatal("duplicate create must not grow the ledger")
	}
}

func TestLedger_TransitionLegality(t *testing.T) {
	l := NewMemoryLedger(nil)
	if err := l.Create(pendingAppt("a", "Client")); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := l.Transition("a", models.StatusConfirmed); err != nil {
		t.Fatalf("pending -> confirmed: %v", err)
	}
	appt, _ := l.Get("a")
	if appt.Status != models.StatusConfirmed {
		t.Fatalf("status = %q, want confirmed", appt.Status)
	}

	// Terminal: a confirmed appointment rejects further transitions.
	if err := l.Transition("a", models.StatusCancelled); !errors.Is(err, ErrTerminalStatus) {
		t.Fatalf("expected ErrTerminalStatus, got %v", err)
	}
	appt, _ = l.Get("a")
	if appt.Status != models.StatusConfirmed {
		t.Fatalf("status mutated to %q by rejected transition", appt.Status)
	}
}

func TestLedger_TransitionRejectsInvalidTargets(t *testing.T) {
	l := NewMemoryLedger(nil)
	if err := l.Create(pendingAppt("a", "Client")); err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, target := range []models.AppointmentStatus{models.StatusPending, models.StatusCompleted, "nonsense"} {
		if err := l.Transition("a", target); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("target %q: expected ErrInvalidTransition, got %v", target, err)
		}
	}
	if err := l.Transition("missing", models.StatusConfirmed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLedger_SearchByClientIsCaseInsensitive(t *testing.T) {
	l := NewMemoryLedger(SeedAppointments())

	got := l.SearchByClient("sadia")
	if len(got) != 1 || got[0].ClientName != "Sadia Islam" {
		t.Fatalf("search 'sadia' = %v", got)
	}
	if got := l.SearchByClient("KHAN"); len(got) != 1 {
		t.Fatalf("search 'KHAN' should match Rahim Khan, got %v", got)
	}
	if got := l.SearchByClient("nobody"); len(got) != 0 {
		t.Fatalf("search 'nobody' = %v", got)
	}
}

func TestLedger_Counts(t *testing.T) {
	l := NewMemoryLedger(SeedAppointments())
	if n := l.CountByStatus(models.StatusConfirmed); n != 1 {
		t.Fatalf("confirmed = %d", n)
	}
	if n := l.CountByStatus(models.StatusPending); n != 1 {
		t.Fatalf("pending = %d", n)
	}
	if n := l.CountVIP(); n != 1 {
		t.Fatalf("vip = %d", n)
	}
}
