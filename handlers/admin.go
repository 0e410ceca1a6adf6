package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"elysium/models"
	"elysium/services/concierge"
	"elysium/store"
	"elysium/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the admin console operations: login, ledger
// management, credentials and the AI briefing.
type AdminHandler struct {
	Credentials store.CredentialStore
	Ledger      store.Ledger
	Catalog     store.CatalogStore
	Concierge   concierge.Service
	Logger      *zap.Logger
}

func NewAdminHandler(creds store.CredentialStore, ledger store.Ledger,
	catalog store.CatalogStore, conciergeSvc concierge.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		Credentials: creds,
		Ledger:      ledger,
		Catalog:     catalog,
		Concierge:   conciergeSvc,
		Logger:      logger,
	}
}

// Login verifies the console credentials and issues a session token.
func (ah *AdminHandler) Login(c *gin.Context) {
	var input models.AdminCredentials
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if !ah.Credentials.Verify(input.Username, input.Passcode) {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
		return
	}
	token, err := utils.GenerateAdminToken(input.Username, 24*time.Hour)
	if err != nil {
		ah.Logger.Error("failed to sign admin token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create session", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListAppointments returns the ledger, optionally filtered by a
// case-insensitive client name substring.
func (ah *AdminHandler) ListAppointments(c *gin.Context) {
	if needle := c.Query("client"); needle != "" {
		c.JSON(http.StatusOK, ah.Ledger.SearchByClient(needle))
		return
	}
	c.JSON(http.StatusOK, ah.Ledger.List())
}

// TransitionAppointment moves a pending appointment to confirmed or
// cancelled. Illegal transitions are rejected with no state change.
func (ah *AdminHandler) TransitionAppointment(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status models.AppointmentStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	if err := ah.Ledger.Transition(id, input.Status); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Appointment not found", id)
		case errors.Is(err, store.ErrTerminalStatus):
			utils.JSONError(c, http.StatusConflict, "Appointment status is terminal", id)
		default:
			utils.JSONError(c, http.StatusBadRequest, "Invalid status transition", string(input.Status))
		}
		return
	}

	appt, _ := ah.Ledger.Get(id)
	c.JSON(http.StatusOK, appt)
}

// UpdateCredentials replaces the console credentials.
func (ah *AdminHandler) UpdateCredentials(c *gin.Context) {
	var input models.AdminCredentials
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if input.Username == "" || input.Passcode == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "username and passcode are required")
		return
	}
	ah.Credentials.Update(input)
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// Stats aggregates the dashboard summary. Revenue is derived from the
// catalog prices of confirmed and completed appointments.
func (ah *AdminHandler) Stats(c *gin.Context) {
	appointments := ah.Ledger.List()
	var revenue float64
	for _, appt := range appointments {
		if appt.Status != models.StatusConfirmed && appt.Status != models.StatusCompleted {
			continue
		}
		if svc, ok := ah.Catalog.Get(appt.ServiceID); ok {
			revenue += parsePriceAmount(svc.Price)
		}
	}
	c.JSON(http.StatusOK, models.AdminStats{
		Revenue:      revenue,
		Bookings:     len(appointments),
		Satisfaction: 98,
	})
}

// Briefing returns the AI morning briefing over the current ledger.
func (ah *AdminHandler) Briefing(c *gin.Context) {
	text := ah.Concierge.Summarize(c.Request.Context(), ah.Ledger.List())
	c.JSON(http.StatusOK, gin.H{"briefing": text})
}

// parsePriceAmount extracts the numeric amount from a display price such as
// "৳15,000". Unparseable prices count as zero.
func parsePriceAmount(display string) float64 {
	var sb strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	amount, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return 0
	}
	return amount
}
