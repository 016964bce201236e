package store

import (
	"fmt"
	"strings"
)

// migrate applies the schema. Statements are idempotent so they can run on
// every startup; "duplicate column" from ALTER TABLE is treated as a no-op.
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS admin_users (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			last_login_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			location TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			registration_required BOOLEAN NOT NULL DEFAULT FALSE,
			contact_info TEXT NOT NULL DEFAULT '',
			gallery_folder_url TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS media (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			speaker TEXT NOT NULL,
			date TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			video_url TEXT NOT NULL DEFAULT '',
			audio_url TEXT NOT NULL DEFAULT '',
			scripture TEXT NOT NULL DEFAULT '',
			series TEXT NOT NULL DEFAULT '',
			duration TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS announcements (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			date TEXT NOT NULL,
			icon TEXT NOT NULL DEFAULT 'Megaphone',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS contact_forms (
			id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			country_code TEXT NOT NULL DEFAULT '',
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			contact_permission BOOLEAN NOT NULL DEFAULT FALSE,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_admin_users_username ON admin_users(username)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_forms_created ON contact_forms(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_events_active ON events(is_active)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			if strings.Contains(err.Error(), "duplicate column") {
				continue
			}
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
