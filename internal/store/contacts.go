package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/livinghopeag/churchapi/internal/model"
)

// CreateContactForm inserts a newly submitted contact message. The ID and
// CreatedAt fields on form are populated after a successful insert; IsRead
// always starts false.
func (s *Store) CreateContactForm(ctx context.Context, form *model.ContactForm) error {
	form.ID = uuid.NewString()
	form.IsRead = false
	form.CreatedAt = time.Now().UTC()

	const q = `INSERT INTO contact_forms
		(id, full_name, email, phone, country_code, subject, message,
		 contact_permission, is_read, created_at)
		VALUES
		(:id, :full_name, :email, :phone, :country_code, :subject, :message,
		 :contact_permission, :is_read, :created_at)`

	if _, err := s.db.NamedExecContext(ctx, q, form); err != nil {
		return fmt.Errorf("insert contact form: %w", err)
	}
	return nil
}

// ListContactForms returns the whole inbox, newest first.
func (s *Store) ListContactForms(ctx context.Context) ([]model.ContactForm, error) {
	var forms []model.ContactForm
	if err := s.db.SelectContext(ctx, &forms, "SELECT * FROM contact_forms ORDER BY created_at DESC"); err != nil {
		return nil, fmt.Errorf("list contact forms: %w", err)
	}
	return forms, nil
}

// MarkContactFormRead flags a contact message as read by ID.
func (s *Store) MarkContactFormRead(ctx context.Context, id string) error {
	q := s.db.Rebind("UPDATE contact_forms SET is_read = ? WHERE id = ?")
	result, err := s.db.ExecContext(ctx, q, true, id)
	if err != nil {
		return fmt.Errorf("mark contact form read: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark contact form read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
