package notify

import (
	"context"
	"time"

	"elysium/models"

	"go.uber.org/zap"
)

// LogDispatcher simulates the email integration point: it renders both
// notifications as structured log records and sleeps the configured
// transport delay. No real transport exists behind it.
type LogDispatcher struct {
	Logger     *zap.Logger
	OwnerEmail string
	Delay      time.Duration
}

func NewLogDispatcher(logger *zap.Logger, ownerEmail string, delay time.Duration) *LogDispatcher {
	return &LogDispatcher{
		Logger:     logger,
		OwnerEmail: ownerEmail,
		Delay:      delay,
	}
}

// DispatchBookingNotifications emits the client receipt and the owner alert,
// then waits out the simulated latency. It fails only when the context is
// cancelled mid-dispatch.
func (d *LogDispatcher) DispatchBookingNotifications(ctx context.Context, details models.BookingNotification) error {
	d.Logger.Info("Sending client receipt",
		zap.String("to", details.Email),
		zap.String("subject", "Your Sanctuary Awaits - Booking Confirmation"),
		zap.String("body",
			"Dear "+details.Name+", thank you for choosing Elysium. Your appointment for "+
				details.ServiceName+" is confirmed for "+details.Date+" at "+details.Time+"."),
	)
	d.Logger.Info("Sending owner alert",
		zap.String("to", d.OwnerEmail),
		zap.String("subject", "New Reservation Alert"),
		zap.String("body",
			"A new booking has been made by "+details.Name+" ("+details.Email+"). Service: "+
				details.ServiceName+"."),
	)

	if d.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(d.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
