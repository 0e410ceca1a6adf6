package notify

import (
	"context"

	"elysium/models"
)

// Dispatcher sends the booking confirmation pair: a receipt to the client
// and an alert to the salon owner. Implementations must settle (return)
// before the caller records the booking, and must honor context
// cancellation while waiting on transport.
type Dispatcher interface {
	DispatchBookingNotifications(ctx context.Context, details models.BookingNotification) error
}
