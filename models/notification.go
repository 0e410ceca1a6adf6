package models

// BookingNotification is the payload handed to the notification dispatcher
// after a booking is accepted: one client receipt and one owner alert are
// derived from it.
type BookingNotification struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}
