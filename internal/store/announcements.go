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

// CreateAnnouncement inserts a new announcement. The ID, CreatedAt, and
// UpdatedAt fields are populated after a successful insert.
func (s *Store) CreateAnnouncement(ctx context.Context, ann *model.Announcement) error {
	now := time.Now().UTC()
	ann.ID = uuid.NewString()
	ann.CreatedAt = now
	ann.UpdatedAt = now

	const q = `INSERT INTO announcements
		(id, title, content, date, icon, is_active, created_at, updated_at)
		VALUES
		(:id, :title, :content, :date, :icon, :is_active, :created_at, :updated_at)`

	if _, err := s.db.NamedExecContext(ctx, q, ann); err != nil {
		return fmt.Errorf("insert announcement: %w", err)
	}
	return nil
}

// GetAnnouncement returns an announcement by ID.
func (s *Store) GetAnnouncement(ctx context.Context, id string) (*model.Announcement, error) {
	var ann model.Announcement
	q := s.db.Rebind("SELECT * FROM announcements WHERE id = ?")
	if err := s.db.GetContext(ctx, &ann, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get announcement: %w", err)
	}
	return &ann, nil
}

// ListAnnouncements returns all announcements, newest first.
func (s *Store) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	var anns []model.Announcement
	if err := s.db.SelectContext(ctx, &anns, "SELECT * FROM announcements ORDER BY created_at DESC"); err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return anns, nil
}

// ListActiveAnnouncements returns only announcements visible on the public site.
func (s *Store) ListActiveAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	var anns []model.Announcement
	q := s.db.Rebind("SELECT * FROM announcements WHERE is_active = ? ORDER BY created_at DESC")
	if err := s.db.SelectContext(ctx, &anns, q, true); err != nil {
		return nil, fmt.Errorf("list active announcements: %w", err)
	}
	return anns, nil
}

// UpdateAnnouncement updates an existing announcement. The UpdatedAt field is
// refreshed automatically.
func (s *Store) UpdateAnnouncement(ctx context.Context, ann *model.Announcement) error {
	ann.UpdatedAt = time.Now().UTC()

	const q = `UPDATE announcements SET
		title = :title, content = :content, date = :date, icon = :icon,
		is_active = :is_active, updated_at = :updated_at
		WHERE id = :id`

	result, err := s.db.NamedExecContext(ctx, q, ann)
	if err != nil {
		return fmt.Errorf("update announcement: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update announcement rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAnnouncement removes an announcement by ID.
func (s *Store) DeleteAnnouncement(ctx context.Context, id string) error {
	q := s.db.Rebind("DELETE FROM announcements WHERE id = ?")
	result, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete announcement rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
