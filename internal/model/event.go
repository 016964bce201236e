package model

import "time"

// Event is a church calendar entry: services, celebrations, outreach.
// Date and Time are kept as display strings because the site renders them
// verbatim ("March 25, 2025", "10:00 AM") rather than computing with them.
type Event struct {
	ID                   string    `json:"id" db:"id"`
	Title                string    `json:"title" db:"title"`
	Description          string    `json:"description" db:"description"`
	Date                 string    `json:"date" db:"date"`
	Time                 string    `json:"time" db:"time"`
	Location             string    `json:"location" db:"location"`
	Category             string    `json:"category,omitempty" db:"category"`
	ImageURL             string    `json:"image_url,omitempty" db:"image_url"`
	RegistrationRequired bool      `json:"registration_required" db:"registration_required"`
	ContactInfo          string    `json:"contact_info,omitempty" db:"contact_info"`
	GalleryFolderURL     string    `json:"gallery_folder_url,omitempty" db:"gallery_folder_url"`
	IsActive             bool      `json:"is_active" db:"is_active"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}
