package models

// ChatMessage is one turn of the concierge conversation.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// BookingData carries the structured arguments the concierge extracted from
// a conversation when it elects to book.
type BookingData struct {
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// ConciergeReply is the tagged result of one concierge turn: always a text
// reply to show the user, plus booking arguments when the model invoked the
// book_appointment tool.
type ConciergeReply struct {
	Text    string       `json:"text"`
	Booking *BookingData `json:"booking,omitempty"`
}
