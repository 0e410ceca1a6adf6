package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"elysium/models"
	"elysium/store"

	"go.uber.org/zap"
)

// recordingDispatcher captures dispatch calls and the ledger size observed
// at dispatch time, so ordering against the ledger insert can be asserted.
type recordingDispatcher struct {
	calls      []models.BookingNotification
	ledger     store.Ledger
	sizeAtCall []int
	failWith   error
	respectCtx bool
}

func (d *recordingDispatcher) DispatchBookingNotifications(ctx context.Context, details models.BookingNotification) error {
	if d.respectCtx {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	d.calls = append(d.calls, details)
	if d.ledger != nil {
		d.sizeAtCall = append(d.sizeAtCall, len(d.ledger.List()))
	}
	return d.failWith
}

func newTestEngine(t *testing.T) (*DefaultEngine, *store.MemoryLedger, *recordingDispatcher) {
	t.Helper()
	ledger := store.NewMemoryLedger(nil)
	dispatcher := &recordingDispatcher{ledger: ledger}
	engine := &DefaultEngine{
		Catalog:    store.NewMemoryCatalogStore(store.SeedServices()),
		Ledger:     ledger,
		Sessions:   NewMemorySessionStore(time.Minute),
		Dispatcher: dispatcher,
		Logger:     zap.NewNop(),
	}
	return engine, ledger, dispatcher
}

func TestSubmit_EndToEnd(t *testing.T) {
	engine, ledger, dispatcher := newTestEngine(t)
	ctx := context.Background()

	appt, err := engine.Submit(ctx, SubmitInput{
		ServiceID: "2",
		Date:      "2024-10-25",
		Time:      "14:00",
		Name:      "Rahim Khan",
		Email:     "rahim@test.com",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if appt.ClientName != "Rahim Khan" {
		t.Fatalf("clientName = %q", appt.ClientName)
	}
	if appt.ServiceName != "Midnight Smokey Glam" {
		t.Fatalf("serviceName = %q", appt.ServiceName)
	}
	if appt.Date != "2024-10-25" || appt.Time != "2:00 PM" {
		t.Fatalf("date/time = %q/%q", appt.Date, appt.Time)
	}
	if appt.Status != models.StatusPending || appt.IsVIP {
		t.Fatalf("status/isVip = %q/%v", appt.Status, appt.IsVIP)
	}
	if appt.ID == "" {
		t.Fatal("appointment id must be generated")
	}

	if got := len(ledger.List()); got != 1 {
		t.Fatalf("ledger size = %d, want 1", got)
	}
	if len(dispatcher.calls) != 1 {
		t.Fatalf("dispatch calls = %d, want 1", len(dispatcher.calls))
	}
	if dispatcher.calls[0].Time != "2:00 PM" {
		t.Fatalf("dispatched time = %q, want normalized", dispatcher.calls[0].Time)
	}
	// Dispatch settled before the ledger insert.
	if dispatcher.sizeAtCall[0] != 0 {
		t.Fatalf("ledger had %d entries at dispatch time, want 0", dispatcher.sizeAtCall[0])
	}
}

func TestSubmit_NoIdempotency(t *testing.T) {
	engine, ledger, _ := newTestEngine(t)
	ctx := context.Background()
	input := SubmitInput{ServiceID: "1", Date: "2024-11-01", Time: "10:00", Name: "Sadia", Email: "sadia@test.com"}

	first, err := engine.Submit(ctx, input)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := engine.Submit(ctx, input)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("identical submissions must produce distinct ids")
	}
	if got := len(ledger.List()); got != 2 {
		t.Fatalf("ledger size = %d, want 2", got)
	}
}

func TestSubmit_ValidationBlocksSideEffects(t *testing.T) {
	engine, ledger, dispatcher := newTestEngine(t)
	ctx := context.Background()

	cases := []SubmitInput{
		{ServiceID: "", Date: "2024-11-01", Time: "10:00", Name: "A", Email: "a@b.c"},
		{ServiceID: "1", Date: "", Time: "10:00", Name: "A", Email: "a@b.c"},
		{ServiceID: "1", Date: "2024-11-01", Time: "", Name: "A", Email: "a@b.c"},
		{ServiceID: "1", Date: "2024-11-01", Time: "10:00", Name: "", Email: "a@b.c"},
		{ServiceID: "1", Date: "2024-11-01", Time: "10:00", Name: "A", Email: ""},
		{ServiceID: "999", Date: "2024-11-01", Time: "10:00", Name: "A", Email: "a@b.c"},
	}
	for i, input := range cases {
		if _, err := engine.Submit(ctx, input); !IsValidationError(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
	if len(dispatcher.calls) != 0 {
		t.Fatalf("dispatcher called %d times on invalid input", len(dispatcher.calls))
	}
	if got := len(ledger.List()); got != 0 {
		t.Fatalf("ledger size = %d after rejected submissions", got)
	}
}

func TestSubmit_MalformedTimePassesThrough(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	appt, err := engine.Submit(context.Background(), SubmitInput{
		ServiceID: "3", Date: "2024-11-02", Time: "sometime", Name: "A", Email: "a@b.c",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if appt.Time != "sometime" {
		t.Fatalf("time = %q, want raw passthrough", appt.Time)
	}
}

func TestSubmit_DispatchFailureStillRecords(t *testing.T) {
	engine, ledger, dispatcher := newTestEngine(t)
	dispatcher.failWith = errors.New("smtp down")

	appt, err := engine.Submit(context.Background(), SubmitInput{
		ServiceID: "1", Date: "2024-11-01", Time: "10:00", Name: "A", Email: "a@b.c",
	})
	if err != nil {
		t.Fatalf("submit must survive a dispatch failure, got %v", err)
	}
	if _, ok := ledger.Get(appt.ID); !ok {
		t.Fatal("appointment missing from ledger after dispatch failure")
	}
}

func TestSubmit_CancellationLeavesNoEntry(t *testing.T) {
	engine, ledger, dispatcher := newTestEngine(t)
	dispatcher.respectCtx = true

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Submit(ctx, SubmitInput{
		ServiceID: "1", Date: "2024-11-01", Time: "10:00", Name: "A", Email: "a@b.c",
	}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if got := len(ledger.List()); got != 0 {
		t.Fatalf("ledger size = %d after cancelled submission", got)
	}
}

func TestApplyCoupon_CaseInsensitive(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	ctx := context.Background()

	for _, code := range []string{"glow20", "GLOW20", "Glow20"} {
		sessionID, err := engine.StartSession(ctx)
		if err != nil {
			t.Fatalf("start session: %v", err)
		}
		applied, err := engine.ApplyCoupon(ctx, sessionID, code)
		if err != nil {
			t.Fatalf("apply %q: %v", code, err)
		}
		if !applied {
			t.Fatalf("code %q must be accepted", code)
		}
	}
}

func TestApplyCoupon_RejectsWrongCodeAndStaysMonotonic(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	ctx := context.Background()

	sessionID, err := engine.StartSession(ctx)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	applied, err := engine.ApplyCoupon(ctx, sessionID, "GLOW10")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if applied {
		t.Fatal("GLOW10 must be rejected")
	}
	sess, err := engine.Sessions.Get(ctx, sessionID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if sess.DiscountApplied {
		t.Fatal("rejected code must leave the flag false")
	}

	if _, err := engine.ApplyCoupon(ctx, sessionID, "glow20"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	// A later mismatch never clears an applied discount.
	if _, err := engine.ApplyCoupon(ctx, sessionID, "nope"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	sess, err = engine.Sessions.Get(ctx, sessionID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if !sess.DiscountApplied {
		t.Fatal("discount flag must stay set for the session")
	}
}

func TestSubmit_DiscountAnnotationAndSessionReset(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	ctx := context.Background()

	sessionID, err := engine.StartSession(ctx)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if _, err := engine.ApplyCoupon(ctx, sessionID, "GLOW20"); err != nil {
		t.Fatalf("apply coupon: %v", err)
	}

	appt, err := engine.Submit(ctx, SubmitInput{
		SessionID: sessionID,
		ServiceID: "1",
		Date:      "2024-12-01",
		Time:      "11:30",
		Name:      "Bride",
		Email:     "bride@test.com",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if appt.ServiceName != "Bridal Ethereal Glow (20% OFF Applied)" {
		t.Fatalf("serviceName = %q", appt.ServiceName)
	}

	// Confirmation resets the flow: the session and its flag are gone.
	if _, err := engine.Sessions.Get(ctx, sessionID); err != ErrSessionNotFound {
		t.Fatalf("expected session discarded after submit, got %v", err)
	}
}

func TestSubmit_WithoutCouponKeepsPlainTitle(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	appt, err := engine.Submit(context.Background(), SubmitInput{
		ServiceID: "1", Date: "2024-12-01", Time: "11:30", Name: "A", Email: "a@b.c",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if appt.ServiceName != "Bridal Ethereal Glow" {
		t.Fatalf("serviceName = %q, want plain title", appt.ServiceName)
	}
}
