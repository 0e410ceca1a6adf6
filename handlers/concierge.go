package handlers

import (
	"net/http"
	"strings"

	"elysium/models"
	"elysium/services/concierge"
	"elysium/store"
	"elysium/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConciergeHandler bridges the chat UI and the intent resolver. When the
// resolver emits booking data the handler records the appointment directly:
// the concierge path bypasses the booking engine's coupon and dispatch
// steps by design.
type ConciergeHandler struct {
	Svc     concierge.Service
	Catalog store.CatalogStore
	Content store.ContentStore
	Ledger  store.Ledger
	Logger  *zap.Logger
}

func NewConciergeHandler(svc concierge.Service, catalog store.CatalogStore,
	content store.ContentStore, ledger store.Ledger, logger *zap.Logger) *ConciergeHandler {
	return &ConciergeHandler{
		Svc:     svc,
		Catalog: catalog,
		Content: content,
		Ledger:  ledger,
		Logger:  logger,
	}
}

// Chat runs one concierge turn.
func (h *ConciergeHandler) Chat(c *gin.Context) {
	var input struct {
		History []models.ChatMessage `json:"history"`
		Message string               `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if strings.TrimSpace(input.Message) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "message is required")
		return
	}

	reply := h.Svc.Converse(c.Request.Context(), input.History, input.Message,
		h.Catalog.List(), h.Content.Get())

	if reply.Booking == nil {
		c.JSON(http.StatusOK, gin.H{"reply": reply.Text, "booked": false})
		return
	}

	appt := h.appointmentFromBooking(*reply.Booking)
	if err := h.Ledger.Create(appt); err != nil {
		h.Logger.Error("failed to record concierge booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record booking", err.Error())
		return
	}
	h.Logger.Info("concierge booking recorded",
		zap.String("appointmentID", appt.ID),
		zap.String("client", appt.ClientName),
		zap.String("service", appt.ServiceName),
	)
	c.JSON(http.StatusOK, gin.H{"reply": reply.Text, "booked": true, "appointment": appt})
}

// appointmentFromBooking translates the model-declared fields into a ledger
// entry. The service linkage is by display name; the id is resolved against
// the catalog best-effort and stays empty for free-text service names.
func (h *ConciergeHandler) appointmentFromBooking(data models.BookingData) models.Appointment {
	email := data.ClientEmail
	if email == "" {
		email = concierge.PlaceholderEmail
	}

	serviceID := ""
	for _, svc := range h.Catalog.List() {
		if strings.EqualFold(svc.Title, data.ServiceName) {
			serviceID = svc.ID
			break
		}
	}

	return models.Appointment{
		ID:          uuid.New().String(),
		ClientName:  data.ClientName,
		ClientEmail: email,
		ServiceID:   serviceID,
		ServiceName: data.ServiceName,
		Date:        data.Date,
		Time:        data.Time,
		Status:      models.StatusPending,
		IsVIP:       false,
	}
}
