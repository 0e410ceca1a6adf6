package models

// Service is one bookable catalog offering. Price and Duration are display
// strings exactly as shown to clients (e.g. "৳8,000", "90m").
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Image       string `json:"image"`
}
