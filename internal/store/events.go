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

// CreateEvent inserts a new event. The ID, CreatedAt, and UpdatedAt fields
// on event are populated after a successful insert.
func (s *Store) CreateEvent(ctx context.Context, event *model.Event) error {
	now := time.Now().UTC()
	event.ID = uuid.NewString()
	event.CreatedAt = now
	event.UpdatedAt = now

	const q = `INSERT INTO events
		(id, title, description, date, time, location, category, image_url,
		 registration_required, contact_info, gallery_folder_url, is_active,
		 created_at, updated_at)
		VALUES
		(:id, :title, :description, :date, :time, :location, :category, :image_url,
		 :registration_required, :contact_info, :gallery_folder_url, :is_active,
		 :created_at, :updated_at)`

	if _, err := s.db.NamedExecContext(ctx, q, event); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetEvent returns an event by ID.
func (s *Store) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	q := s.db.Rebind("SELECT * FROM events WHERE id = ?")
	if err := s.db.GetContext(ctx, &event, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &event, nil
}

// ListEvents returns all events, newest first. The admin surface uses this.
func (s *Store) ListEvents(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := s.db.SelectContext(ctx, &events, "SELECT * FROM events ORDER BY created_at DESC"); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// ListActiveEvents returns only events visible on the public site.
func (s *Store) ListActiveEvents(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	q := s.db.Rebind("SELECT * FROM events WHERE is_active = ? ORDER BY created_at DESC")
	if err := s.db.SelectContext(ctx, &events, q, true); err != nil {
		return nil, fmt.Errorf("list active events: %w", err)
	}
	return events, nil
}

// UpdateEvent updates an existing event. The UpdatedAt field on event is
// refreshed automatically.
func (s *Store) UpdateEvent(ctx context.Context, event *model.Event) error {
	event.UpdatedAt = time.Now().UTC()

	const q = `UPDATE events SET
		title = :title, description = :description, date = :date, time = :time,
		location = :location, category = :category, image_url = :image_url,
		registration_required = :registration_required, contact_info = :contact_info,
		gallery_folder_url = :gallery_folder_url, is_active = :is_active,
		updated_at = :updated_at
		WHERE id = :id`

	result, err := s.db.NamedExecContext(ctx, q, event)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEvent removes an event by ID.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	q := s.db.Rebind("DELETE FROM events WHERE id = ?")
	result, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
