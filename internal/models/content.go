package models

import "time"

// Service is an offering shown on the services section of the site.
type Service struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"` // Feather icon name
	Features    []string  `json:"features"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Feature is an "about us" highlight card.
type Feature struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"` // Feather icon name
}

// Testimonial is a client quote shown on the landing page.
type Testimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
}
