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

// CreateMedia inserts a new media record. The ID, CreatedAt, and UpdatedAt
// fields on media are populated after a successful insert.
func (s *Store) CreateMedia(ctx context.Context, media *model.Media) error {
	now := time.Now().UTC()
	media.ID = uuid.NewString()
	media.CreatedAt = now
	media.UpdatedAt = now

	const q = `INSERT INTO media
		(id, title, speaker, date, description, video_url, audio_url,
		 scripture, series, duration, is_active, created_at, updated_at)
		VALUES
		(:id, :title, :speaker, :date, :description, :video_url, :audio_url,
		 :scripture, :series, :duration, :is_active, :created_at, :updated_at)`

	if _, err := s.db.NamedExecContext(ctx, q, media); err != nil {
		return fmt.Errorf("insert media: %w", err)
	}
	return nil
}

// GetMedia returns a media record by ID.
func (s *Store) GetMedia(ctx context.Context, id string) (*model.Media, error) {
	var media model.Media
	q := s.db.Rebind("SELECT * FROM media WHERE id = ?")
	if err := s.db.GetContext(ctx, &media, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get media: %w", err)
	}
	return &media, nil
}

// ListMedia returns all media records, newest first.
func (s *Store) ListMedia(ctx context.Context) ([]model.Media, error) {
	var media []model.Media
	if err := s.db.SelectContext(ctx, &media, "SELECT * FROM media ORDER BY created_at DESC"); err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return media, nil
}

// ListActiveMedia returns only media visible on the public site.
func (s *Store) ListActiveMedia(ctx context.Context) ([]model.Media, error) {
	var media []model.Media
	q := s.db.Rebind("SELECT * FROM media WHERE is_active = ? ORDER BY created_at DESC")
	if err := s.db.SelectContext(ctx, &media, q, true); err != nil {
		return nil, fmt.Errorf("list active media: %w", err)
	}
	return media, nil
}

// UpdateMedia updates an existing media record. The UpdatedAt field on media
// is refreshed automatically.
func (s *Store) UpdateMedia(ctx context.Context, media *model.Media) error {
	media.UpdatedAt = time.Now().UTC()

	const q = `UPDATE media SET
		title = :title, speaker = :speaker, date = :date, description = :description,
		video_url = :video_url, audio_url = :audio_url, scripture = :scripture,
		series = :series, duration = :duration, is_active = :is_active,
		updated_at = :updated_at
		WHERE id = :id`

	result, err := s.db.NamedExecContext(ctx, q, media)
	if err != nil {
		return fmt.Errorf("update media: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update media rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMedia removes a media record by ID.
func (s *Store) DeleteMedia(ctx context.Context, id string) error {
	q := s.db.Rebind("DELETE FROM media WHERE id = ?")
	result, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete media rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
