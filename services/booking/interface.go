package booking

import (
	"context"

	"elysium/models"
	"elysium/services/notify"
	"elysium/store"

	"go.uber.org/zap"
)

// SubmitInput is one client-submitted booking request. SessionID is
// optional; when present it carries the coupon state for the flow.
type SubmitInput struct {
	SessionID string `json:"sessionId"`
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// Engine drives the reservation pipeline: session lifecycle, coupon
// application, validation, time normalization, notification dispatch and
// ledger insertion.
type Engine interface {
	StartSession(ctx context.Context) (string, error)
	ApplyCoupon(ctx context.Context, sessionID, code string) (bool, error)
	Submit(ctx context.Context, input SubmitInput) (models.Appointment, error)
}

// DefaultEngine implements Engine over the in-memory stores.
type DefaultEngine struct {
	Catalog    store.CatalogStore
	Ledger     store.Ledger
	Sessions   SessionStore
	Dispatcher notify.Dispatcher
	Logger     *zap.Logger
}
