package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"elysium/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession opens a fresh booking session with the discount flag clear.
func (e *DefaultEngine) StartSession(ctx context.Context) (string, error) {
	sess := &Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
	}
	if err := e.Sessions.Put(ctx, sess); err != nil {
		return "", fmt.Errorf("store booking session: %w", err)
	}
	return sess.ID, nil
}

// ApplyCoupon validates the entered code against the running offer. On a
// match the session's discount flag is set and stays set; a mismatch leaves
// it untouched so the client may retry.
func (e *DefaultEngine) ApplyCoupon(ctx context.Context, sessionID, code string) (bool, error) {
	sess, err := e.Sessions.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if !couponMatches(code) {
		return false, nil
	}
	if sess.DiscountApplied {
		return true, nil
	}
	sess.DiscountApplied = true
	if err := e.Sessions.Put(ctx, sess); err != nil {
		return false, fmt.Errorf("store booking session: %w", err)
	}
	return true, nil
}

// Submit runs the full pipeline. The side effects are strictly ordered:
// notification dispatch settles first, and only then is the appointment
// appended to the ledger. Cancellation mid-dispatch leaves the ledger
// untouched. Re-submitting identical inputs creates a second appointment
// with a distinct id.
func (e *DefaultEngine) Submit(ctx context.Context, input SubmitInput) (models.Appointment, error) {
	if err := validateSubmit(input); err != nil {
		return models.Appointment{}, err
	}
	svc, ok := e.Catalog.Get(input.ServiceID)
	if !ok {
		return models.Appointment{}, newValidationError("serviceId", "unknown service")
	}

	// The session only carries the coupon flag; a missing or expired
	// session means no discount, not a failed submission.
	discount := false
	if input.SessionID != "" {
		if sess, err := e.Sessions.Get(ctx, input.SessionID); err == nil {
			discount = sess.DiscountApplied
		}
	}

	serviceName := svc.Title
	if discount {
		serviceName += discountSuffix
	}
	displayTime := NormalizeTime(input.Time)

	err := e.Dispatcher.DispatchBookingNotifications(ctx, models.BookingNotification{
		Name:        input.Name,
		Email:       input.Email,
		ServiceName: serviceName,
		Date:        input.Date,
		Time:        displayTime,
	})
	if err != nil {
		if ctx.Err() != nil {
			return models.Appointment{}, ctx.Err()
		}
		// The ledger entry is the authoritative record; a failed dispatch
		// must not lose the booking.
		e.Logger.Warn("booking notification dispatch failed", zap.Error(err))
	}

	appt := models.Appointment{
		ID:          uuid.New().String(),
		ClientName:  input.Name,
		ClientEmail: input.Email,
		ServiceID:   svc.ID,
		ServiceName: serviceName,
		Date:        input.Date,
		Time:        displayTime,
		Status:      models.StatusPending,
		IsVIP:       false,
	}
	if err := e.Ledger.Create(appt); err != nil {
		return models.Appointment{}, fmt.Errorf("record appointment: %w", err)
	}

	// Confirmation resets the flow; the coupon flag dies with the session.
	if input.SessionID != "" {
		if err := e.Sessions.Delete(ctx, input.SessionID); err != nil {
			e.Logger.Warn("failed to discard booking session",
				zap.String("sessionID", input.SessionID), zap.Error(err))
		}
	}
	return appt, nil
}

func validateSubmit(input SubmitInput) error {
	switch {
	case strings.TrimSpace(input.ServiceID) == "":
		return newValidationError("serviceId", "a service must be selected")
	case strings.TrimSpace(input.Date) == "":
		return newValidationError("date", "date is required")
	case strings.TrimSpace(input.Time) == "":
		return newValidationError("time", "time is required")
	case strings.TrimSpace(input.Name) == "":
		return newValidationError("name", "name is required")
	case strings.TrimSpace(input.Email) == "":
		return newValidationError("email", "email is required")
	}
	return nil
}
