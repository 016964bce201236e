package model

import "time"

// AdminUser represents an administrator account that can manage site content
// through the admin API. Passwords are stored as bcrypt hashes.
type AdminUser struct {
	ID           string     `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"` // bcrypt hash, never expose
	IsActive     bool       `json:"is_active" db:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// Public returns a copy of the account with only the fields safe to serve
// to API clients.
func (a *AdminUser) Public() map[string]interface{} {
	m := map[string]interface{}{
		"id":         a.ID,
		"username":   a.Username,
		"email":      a.Email,
		"is_active":  a.IsActive,
		"created_at": a.CreatedAt,
	}
	if a.LastLoginAt != nil {
		m["last_login_at"] = a.LastLoginAt
	}
	return m
}
