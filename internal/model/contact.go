package model

import "time"

// ContactForm is one message submitted through the public contact page.
// Admins read these through the inbox; IsRead tracks triage state.
type ContactForm struct {
	ID                string    `json:"id" db:"id"`
	FullName          string    `json:"full_name" db:"full_name"`
	Email             string    `json:"email" db:"email"`
	Phone             string    `json:"phone,omitempty" db:"phone"`
	CountryCode       string    `json:"country_code,omitempty" db:"country_code"`
	Subject           string    `json:"subject" db:"subject"`
	Message           string    `json:"message" db:"message"`
	ContactPermission bool      `json:"contact_permission" db:"contact_permission"`
	IsRead            bool      `json:"is_read" db:"is_read"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}
