package model

import "time"

// Media is a sermon or worship recording published on the site.
type Media struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Speaker     string    `json:"speaker" db:"speaker"`
	Date        string    `json:"date" db:"date"`
	Description string    `json:"description,omitempty" db:"description"`
	VideoURL    string    `json:"video_url,omitempty" db:"video_url"`
	AudioURL    string    `json:"audio_url,omitempty" db:"audio_url"`
	Scripture   string    `json:"scripture,omitempty" db:"scripture"`
	Series      string    `json:"series,omitempty" db:"series"`
	Duration    string    `json:"duration,omitempty" db:"duration"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
