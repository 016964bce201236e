package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/livinghopeag/churchapi/internal/model"
	"github.com/livinghopeag/churchapi/internal/store"
)

func newTestAuth(t *testing.T) (*AuthService, *store.Store) {
	t.Helper()
	st, err := store.Open("sqlite", "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	auth, err := NewAuthService(st, "test-secret-key-for-jwt", time.Hour, slog.Default())
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return auth, st
}

func createTestAdmin(t *testing.T, st *store.Store, username, password string) *model.AdminUser {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	admin := &model.AdminUser{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := st.CreateAdmin(context.Background(), admin); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	return admin
}

func TestNewAuthService_EmptySecret(t *testing.T) {
	st, err := store.Open("sqlite", "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if _, err := NewAuthService(st, "", time.Hour, slog.Default()); err == nil {
		t.Fatal("expected error for empty signing secret")
	}
}

func TestLoginAndAuthorizeRoundTrip(t *testing.T) {
	auth, st := newTestAuth(t)
	ctx := context.Background()
	createTestAdmin(t, st, "pastor", "Secret123!")

	token, admin, err := auth.Login(ctx, "pastor", "Secret123!")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if admin.Username != "pastor" {
		t.Errorf("Username: got %q, want %q", admin.Username, "pastor")
	}

	resolved, err := auth.Authorize(ctx, token)
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if resolved.Username != "pastor" {
		t.Errorf("resolved subject: got %q, want %q", resolved.Username, "pastor")
	}
}

// A wrong password and an unknown username must be indistinguishable to the
// caller, otherwise login responses leak which usernames exist.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	auth, st := newTestAuth(t)
	ctx := context.Background()
	createTestAdmin(t, st, "pastor", "Secret123!")

	_, _, errWrongPassword := auth.Login(ctx, "pastor", "wrong-password")
	_, _, errUnknownUser := auth.Login(ctx, "nobody", "Secret123!")

	if !errors.Is(errWrongPassword, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", errWrongPassword)
	}
	if !errors.Is(errUnknownUser, ErrInvalidCredentials) {
		t.Errorf("unknown username: got %v, want ErrInvalidCredentials", errUnknownUser)
	}
	if errWrongPassword.Error() != errUnknownUser.Error() {
		t.Errorf("error messages differ: %q vs %q", errWrongPassword, errUnknownUser)
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	auth, st := newTestAuth(t)
	ctx := context.Background()
	admin := createTestAdmin(t, st, "pastor", "Secret123!")

	if err := st.SetAdminActive(ctx, admin.ID, false); err != nil {
		t.Fatalf("SetAdminActive: %v", err)
	}

	_, _, err := auth.Login(ctx, "pastor", "Secret123!")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("inactive account login: got %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthorizeExpiredToken(t *testing.T) {
	auth, st := newTestAuth(t)
	ctx := context.Background()
	createTestAdmin(t, st, "pastor", "Secret123!")

	for _, ttl := range []time.Duration{0, -time.Hour} {
		token, err := auth.IssueToken("pastor", ttl)
		if err != nil {
			t.Fatalf("IssueToken(ttl=%v): %v", ttl, err)
		}
		_, err = auth.Authorize(ctx, token)
		if !errors.Is(err, ErrTokenExpired) {
			t.Errorf("ttl=%v: got %v, want ErrTokenExpired", ttl, err)
		}
	}
}

func TestAuthorizeTamperedToken(t *testing.T) {
	auth, st := newTestAuth(t)
	ctx := context.Background()
	createTestAdmin(t, st, "pastor", "Secret123!")

	token, err := auth.IssueToken("pastor", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	// Flip one byte in the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = auth.Authorize(ctx, string(tampered))
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("tampered token: got %v, want ErrInvalidToken", err)
	}
}

func TestAuthorizeGarbageToken(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.Authorize(context.Background(), "garbage.token.here")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: got %v, want ErrInvalidToken", err)
	}
}

// Deactivating an account is the revocation mechanism: tokens issued before
// the flag flips must stop working immediately.
func TestAuthorizeDeactivatedAfterIssue(t *testing.T) {
	auth, st := newTestAuth(t)
	ctx := context.Background()
	admin := createTestAdmin(t, st, "pastor", "Secret123!")

	token, _, err := auth.Login(ctx, "pastor", "Secret123!")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := auth.Authorize(ctx, token); err != nil {
		t.Fatalf("Authorize before deactivation: %v", err)
	}

	if err := st.SetAdminActive(ctx, admin.ID, false); err != nil {
		t.Fatalf("SetAdminActive: %v", err)
	}

	_, err = auth.Authorize(ctx, token)
	if !errors.Is(err, ErrSubjectDisabled) {
		t.Errorf("deactivated subject: got %v, want ErrSubjectDisabled", err)
	}
}

func TestAuthorizeUnknownSubject(t *testing.T) {
	auth, _ := newTestAuth(t)

	token, err := auth.IssueToken("ghost", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	_, err = auth.Authorize(context.Background(), token)
	if !errors.Is(err, ErrSubjectDisabled) {
		t.Errorf("unknown subject: got %v, want ErrSubjectDisabled", err)
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !VerifyPassword("correct horse battery staple", hash) {
		t.Error("expected matching password to verify")
	}
	if VerifyPassword("wrong password", hash) {
		t.Error("expected mismatched password to fail")
	}
}

func TestIsAuthError(t *testing.T) {
	for _, err := range []error{ErrInvalidCredentials, ErrInvalidToken, ErrTokenExpired, ErrSubjectDisabled} {
		if !IsAuthError(err) {
			t.Errorf("IsAuthError(%v) = false, want true", err)
		}
	}
	if IsAuthError(errors.New("database is down")) {
		t.Error("IsAuthError matched a non-auth error")
	}
}
