package store

import (
	"context"
	"errors"
	"testing"

	"github.com/livinghopeag/churchapi/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open("sqlite", "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpenUnsupportedDriver(t *testing.T) {
	if _, err := Open("oracle", "dsn"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestAdminCRUD(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	hasAdmin, err := st.HasAnyAdmin(ctx)
	if err != nil {
		t.Fatalf("HasAnyAdmin: %v", err)
	}
	if hasAdmin {
		t.Fatal("fresh store should have no admins")
	}

	admin := &model.AdminUser{
		Username:     "pastor",
		Email:        "pastor@example.com",
		PasswordHash: "$2a$12$fakehash",
		IsActive:     true,
	}
	if err := st.CreateAdmin(ctx, admin); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if admin.ID == "" {
		t.Fatal("expected ID to be populated")
	}

	got, err := st.GetAdminByUsername(ctx, "pastor")
	if err != nil {
		t.Fatalf("GetAdminByUsername: %v", err)
	}
	if got.Email != "pastor@example.com" {
		t.Errorf("Email: got %q", got.Email)
	}
	if got.LastLoginAt != nil {
		t.Error("LastLoginAt should start nil")
	}

	if _, err := st.GetAdminByUsername(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown username: got %v, want ErrNotFound", err)
	}

	if err := st.UpdateAdminLastLogin(ctx, admin.ID); err != nil {
		t.Fatalf("UpdateAdminLastLogin: %v", err)
	}
	got, _ = st.GetAdminByUsername(ctx, "pastor")
	if got.LastLoginAt == nil {
		t.Error("LastLoginAt should be set after UpdateAdminLastLogin")
	}

	if err := st.SetAdminActive(ctx, admin.ID, false); err != nil {
		t.Fatalf("SetAdminActive: %v", err)
	}
	got, _ = st.GetAdminByUsername(ctx, "pastor")
	if got.IsActive {
		t.Error("expected account to be inactive")
	}

	if err := st.SetAdminActive(ctx, "no-such-id", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetAdminActive unknown id: got %v, want ErrNotFound", err)
	}

	admins, err := st.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("ListAdmins: %v", err)
	}
	if len(admins) != 1 {
		t.Errorf("ListAdmins: got %d, want 1", len(admins))
	}
}

func TestEventCRUD(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	event := &model.Event{
		Title:       "Easter Celebration",
		Description: "Join us for Easter service",
		Date:        "April 20, 2025",
		Time:        "10:00 AM",
		Location:    "Main Hall",
		Category:    "Celebration",
		IsActive:    true,
	}
	if err := st.CreateEvent(ctx, event); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	got, err := st.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if got.Title != "Easter Celebration" {
		t.Errorf("Title: got %q", got.Title)
	}

	got.Location = "Garden"
	got.IsActive = false
	if err := st.UpdateEvent(ctx, got); err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}

	active, err := st.ListActiveEvents(ctx)
	if err != nil {
		t.Fatalf("ListActiveEvents: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("inactive event leaked into active list: %d", len(active))
	}

	all, err := st.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("ListEvents: got %d, want 1", len(all))
	}

	if err := st.DeleteEvent(ctx, event.ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if err := st.DeleteEvent(ctx, event.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete: got %v, want ErrNotFound", err)
	}
	if _, err := st.GetEvent(ctx, event.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: got %v, want ErrNotFound", err)
	}
}

func TestMediaCRUD(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	media := &model.Media{
		Title:    "Walking in Faith",
		Speaker:  "Pastor John",
		Date:     "March 2, 2025",
		VideoURL: "https://youtube.com/watch?v=abc123def",
		IsActive: true,
	}
	if err := st.CreateMedia(ctx, media); err != nil {
		t.Fatalf("CreateMedia: %v", err)
	}

	got, err := st.GetMedia(ctx, media.ID)
	if err != nil {
		t.Fatalf("GetMedia: %v", err)
	}
	if got.Speaker != "Pastor John" {
		t.Errorf("Speaker: got %q", got.Speaker)
	}

	got.Series = "Faith Foundations"
	if err := st.UpdateMedia(ctx, got); err != nil {
		t.Fatalf("UpdateMedia: %v", err)
	}

	active, err := st.ListActiveMedia(ctx)
	if err != nil {
		t.Fatalf("ListActiveMedia: %v", err)
	}
	if len(active) != 1 || active[0].Series != "Faith Foundations" {
		t.Errorf("unexpected active media: %+v", active)
	}

	if err := st.DeleteMedia(ctx, media.ID); err != nil {
		t.Fatalf("DeleteMedia: %v", err)
	}
	if err := st.UpdateMedia(ctx, got); !errors.Is(err, ErrNotFound) {
		t.Errorf("update after delete: got %v, want ErrNotFound", err)
	}
}

func TestAnnouncementCRUD(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	ann := &model.Announcement{
		Title:    "Prayer Meeting",
		Content:  "Wednesday at 7pm in the chapel",
		Date:     "March 5, 2025",
		Icon:     "Megaphone",
		IsActive: true,
	}
	if err := st.CreateAnnouncement(ctx, ann); err != nil {
		t.Fatalf("CreateAnnouncement: %v", err)
	}

	got, err := st.GetAnnouncement(ctx, ann.ID)
	if err != nil {
		t.Fatalf("GetAnnouncement: %v", err)
	}
	if got.Icon != "Megaphone" {
		t.Errorf("Icon: got %q", got.Icon)
	}

	got.IsActive = false
	if err := st.UpdateAnnouncement(ctx, got); err != nil {
		t.Fatalf("UpdateAnnouncement: %v", err)
	}

	active, err := st.ListActiveAnnouncements(ctx)
	if err != nil {
		t.Fatalf("ListActiveAnnouncements: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("inactive announcement leaked into active list: %d", len(active))
	}

	if err := st.DeleteAnnouncement(ctx, ann.ID); err != nil {
		t.Fatalf("DeleteAnnouncement: %v", err)
	}
}

func TestContactFormInbox(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	form := &model.ContactForm{
		FullName:          "Jane Visitor",
		Email:             "jane@example.com",
		Subject:           "Service times",
		Message:           "What time is the Friday service?",
		ContactPermission: true,
	}
	if err := st.CreateContactForm(ctx, form); err != nil {
		t.Fatalf("CreateContactForm: %v", err)
	}
	if form.IsRead {
		t.Error("new submissions must start unread")
	}

	forms, err := st.ListContactForms(ctx)
	if err != nil {
		t.Fatalf("ListContactForms: %v", err)
	}
	if len(forms) != 1 {
		t.Fatalf("ListContactForms: got %d, want 1", len(forms))
	}

	if err := st.MarkContactFormRead(ctx, form.ID); err != nil {
		t.Fatalf("MarkContactFormRead: %v", err)
	}
	forms, _ = st.ListContactForms(ctx)
	if !forms[0].IsRead {
		t.Error("expected message to be marked read")
	}

	if err := st.MarkContactFormRead(ctx, "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	n, err := st.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n == 0 {
		t.Fatal("expected first seed to insert records")
	}

	n2, err := st.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed (second run): %v", err)
	}
	if n2 != 0 {
		t.Errorf("second seed inserted %d records, want 0", n2)
	}
}
