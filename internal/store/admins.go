package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/livinghopeag/churchapi/internal/model"
)

// CreateAdmin inserts a new admin account. The ID, CreatedAt, and UpdatedAt
// fields on admin are populated after a successful insert.
func (s *Store) CreateAdmin(ctx context.Context, admin *model.AdminUser) error {
	now := time.Now().UTC()
	admin.ID = uuid.NewString()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	const q = `INSERT INTO admin_users
		(id, username, email, password_hash, is_active, created_at, updated_at)
		VALUES
		(:id, :username, :email, :password_hash, :is_active, :created_at, :updated_at)`

	if _, err := s.db.NamedExecContext(ctx, q, admin); err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetAdminByUsername returns an admin account by its unique username.
func (s *Store) GetAdminByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var admin model.AdminUser
	q := s.db.Rebind("SELECT * FROM admin_users WHERE username = ?")
	if err := s.db.GetContext(ctx, &admin, q, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get admin by username: %w", err)
	}
	return &admin, nil
}

// ListAdmins returns all admin accounts ordered by username.
func (s *Store) ListAdmins(ctx context.Context) ([]model.AdminUser, error) {
	var admins []model.AdminUser
	if err := s.db.SelectContext(ctx, &admins, "SELECT * FROM admin_users ORDER BY username"); err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

// HasAnyAdmin reports whether at least one admin account exists. Startup uses
// this to decide whether to create the bootstrap account.
func (s *Store) HasAnyAdmin(ctx context.Context) (bool, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM admin_users"); err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	return count > 0, nil
}

// UpdateAdminLastLogin sets the last_login_at timestamp for an admin.
func (s *Store) UpdateAdminLastLogin(ctx context.Context, id string) error {
	now := time.Now().UTC()
	q := s.db.Rebind("UPDATE admin_users SET last_login_at = ?, updated_at = ? WHERE id = ?")
	result, err := s.db.ExecContext(ctx, q, now, now, id)
	if err != nil {
		return fmt.Errorf("update admin last login: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update admin last login rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetAdminActive flips the active flag for an admin account. Deactivating an
// account is the only way to invalidate its outstanding tokens.
func (s *Store) SetAdminActive(ctx context.Context, id string, active bool) error {
	now := time.Now().UTC()
	q := s.db.Rebind("UPDATE admin_users SET is_active = ?, updated_at = ? WHERE id = ?")
	result, err := s.db.ExecContext(ctx, q, active, now, id)
	if err != nil {
		return fmt.Errorf("set admin active: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set admin active rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
