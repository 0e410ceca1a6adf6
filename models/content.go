package models

// HeroContent is the editable hero copy.
type HeroContent struct {
	Subtitle string `json:"subtitle"`
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
}

// ContactContent is the editable contact/location block.
type ContactContent struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	Phone        string `json:"phone"`
	Hours        string `json:"hours"`
	MapURL       string `json:"mapUrl"`
}

// CMSContent is the full editable site content. Mutated only by the admin
// console; the booking and concierge paths read snapshots of it.
type CMSContent struct {
	Hero    HeroContent    `json:"hero"`
	Contact ContactContent `json:"contact"`
}

// AdminCredentials gate the admin console. Compared by exact string equality.
type AdminCredentials struct {
	Username string `json:"username"`
	Passcode string `json:"passcode"`
}

// AdminStats is the dashboard summary block.
type AdminStats struct {
	Revenue      float64 `json:"revenue"`
	Bookings     int     `json:"bookings"`
	Satisfaction int     `json:"satisfaction"`
}
