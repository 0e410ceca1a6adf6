package store

import "elysium/models"

// SeedServices is the launch catalog.
func SeedServices() []models.Service {
	return []models.Service{
		{
			ID:          "1",
			Title:       "Bridal Ethereal Glow",
			Price:       "৳15,000",
			Description: "High-definition airbrush makeup for the perfect wedding day radiance.",
			Duration:    "120m",
			Image:       "https://images.unsplash.com/photo-1487412947132-26c244971044?q=80&w=2070&auto=format&fit=crop",
		},
		{
			ID:          "2",
			Title:       "Midnight Smokey Glam",
			Price:       "৳8,000",
			Description: "Intense, sultry eye makeup paired with nude lips for evening galas.",
			Duration:    "90m",
			Image:       "https://images.unsplash.com/photo-1596704017254-9b121068fb31?q=80&w=2070&auto=format&fit=crop",
		},
		{
			ID:          "3",
			Title:       "The Gold Contour",
			Price:       "৳6,500",
			Description: "Expert sculpting and highlighting using 24K gold infused products.",
			Duration:    "60m",
			Image:       "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?q=80&w=2070&auto=format&fit=crop",
		},
		{
			ID:          "4",
			Title:       "Avant-Garde Artistry",
			Price:       "৳10,000",
			Description: "Editorial style creative makeup for photoshoots and runway looks.",
			Duration:    "100m",
			Image:       "https://images.unsplash.com/photo-1503236823255-94308a44eb67?q=80&w=2070&auto=format&fit=crop",
		},
		{
			ID:          "5",
			Title:       "Porcelain Skin Finish",
			Price:       "৳5,500",
			Description: "Glass-skin makeup technique for a flawless, natural dewy look.",
			Duration:    "60m",
			Image:       "https://images.unsplash.com/photo-1522337660859-02fbefca4702?q=80&w=2069&auto=format&fit=crop",
		},
	}
}

// SeedContent is the launch site copy.
func SeedContent() models.CMSContent {
	return models.CMSContent{
		Hero: models.HeroContent{
			Subtitle: "Est. 2024 • Dhaka • Gulshan",
			Title:    "ELYSIUM",
			Tagline:  "Where beauty meets infinite luxury.",
		},
		Contact: models.ContactContent{
			AddressLine1: "128 Gulshan Avenue, Penthouse Suite",
			AddressLine2: "Dhaka, Bangladesh 1212",
			Phone:        "+880 1711-000000",
			Hours:        "Mon - Sat: 10am - 9pm",
			MapURL:       "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3651.015243853683!2d90.41031337609276!3d23.793751787550183!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x3755c7a0f7514101%3A0x633d7b432924151b!2sGulshan%201%2C%20Dhaka%201212!5e0!3m2!1sen!2sbd!4v1700000000000!5m2!1sen!2sbd",
		},
	}
}

// SeedAppointments is the demo ledger content.
func SeedAppointments() []models.Appointment {
	return []models.Appointment{
		{
			ID:          "101",
			ClientName:  "Sadia Islam",
			ClientEmail: "sadia@test.com",
			ServiceID:   "1",
			ServiceName: "Bridal Ethereal Glow",
			Date:        "2024-10-25",
			Time:        "10:00 AM",
			Status:      models.StatusConfirmed,
			IsVIP:       true,
		},
		{
			ID:          "102",
			ClientName:  "Rahim Khan",
			ClientEmail: "rahim@test.com",
			ServiceID:   "2",
			ServiceName: "Midnight Smokey Glam",
			Date:        "2024-10-25",
			Time:        "02:00 PM",
			Status:      models.StatusPending,
			IsVIP:       false,
		},
	}
}
