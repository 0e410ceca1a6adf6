package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the handler functions route registration needs.
type HandlerBundle struct {
	// Public endpoints.
	ListServices        gin.HandlerFunc
	GetContent          gin.HandlerFunc
	StartBookingSession gin.HandlerFunc
	ApplyCoupon         gin.HandlerFunc
	SubmitBooking       gin.HandlerFunc
	ConciergeChat       gin.HandlerFunc
	AdminLogin          gin.HandlerFunc

	// Admin endpoints.
	ListAppointments      gin.HandlerFunc
	TransitionAppointment gin.HandlerFunc
	AddService            gin.HandlerFunc
	UpdateService         gin.HandlerFunc
	RemoveService         gin.HandlerFunc
	UpdateContent         gin.HandlerFunc
	UpdateCredentials     gin.HandlerFunc
	AdminStats            gin.HandlerFunc
	AdminBriefing         gin.HandlerFunc
}
