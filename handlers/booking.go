package handlers

import (
	"errors"
	"net/http"

	"elysium/services/booking"
	"elysium/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the reservation pipeline.
type BookingHandler struct {
	Engine booking.Engine
	Logger *zap.Logger
}

func NewBookingHandler(engine booking.Engine, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Logger: logger}
}

// StartSession opens a booking session and returns its id.
func (h *BookingHandler) StartSession(c *gin.Context) {
	sessionID, err := h.Engine.StartSession(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to start booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID})
}

// ApplyCoupon validates a coupon code against the running offer.
func (h *BookingHandler) ApplyCoupon(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionID"`
		Code      string `json:"code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	applied, err := h.Engine.ApplyCoupon(c.Request.Context(), input.SessionID, input.Code)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking session not found or expired", "")
			return
		}
		h.Logger.Error("failed to apply coupon", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to apply coupon", err.Error())
		return
	}
	if !applied {
		// Recoverable: the client may retry with another code.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"applied": false, "message": "Invalid Code"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": true, "message": "20% Discount Applied!"})
}

// Submit runs the booking pipeline. The response is only written after the
// notification dispatch settles, so the client observes the processing
// latency.
func (h *BookingHandler) Submit(c *gin.Context) {
	var input booking.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	appt, err := h.Engine.Submit(c.Request.Context(), input)
	if err != nil {
		if booking.IsValidationError(err) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "Booking rejected", err.Error())
			return
		}
		h.Logger.Error("booking submission failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to submit booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}
