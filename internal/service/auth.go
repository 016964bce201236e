// Package service implements admin authentication: password verification,
// token issuance, and the authorization gate every admin route runs behind.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/livinghopeag/churchapi/internal/model"
	"github.com/livinghopeag/churchapi/internal/store"
)

// Authentication failures. All four map to a single 401 response class at
// the HTTP boundary but are kept distinct for logging: an operator needs to
// tell a tampered token from an expired one from a deactivated account.
// Store failures are wrapped and match none of these, so callers surface
// them as server errors rather than masking an outage as bad credentials.
var (
	// ErrInvalidCredentials is returned by Login for a bad username or a bad
	// password. The two cases are deliberately indistinguishable to prevent
	// username enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned by Authorize for a malformed, unsigned, or
	// tampered token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned by Authorize for a well-formed token past
	// its expiry. Clients may use this to prompt a re-login specifically.
	ErrTokenExpired = errors.New("token expired")

	// ErrSubjectDisabled is returned by Authorize when the token verifies but
	// its subject no longer resolves to an active admin account. Deactivating
	// an account is the only revocation mechanism for outstanding tokens.
	ErrSubjectDisabled = errors.New("account disabled or unknown")
)

// bcryptCost matches the cost the original deployment hashed with.
const bcryptCost = 12

// AuthService issues and verifies admin bearer tokens. It is stateless
// across requests: every Authorize call re-runs the full verification chain
// against the store, so there is no session to invalidate.
type AuthService struct {
	store    *store.Store
	secret   []byte
	tokenTTL time.Duration
	logger   *slog.Logger
}

// NewAuthService wires the authentication service. An empty signing secret
// is a configuration error and refuses to start rather than issuing
// unverifiable tokens.
func NewAuthService(st *store.Store, secret string, tokenTTL time.Duration, logger *slog.Logger) (*AuthService, error) {
	if secret == "" {
		return nil, errors.New("auth: signing secret must not be empty")
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		store:    st,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}, nil
}

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}

// Login authenticates a username/password pair and returns a signed bearer
// token plus the resolved account. An unknown username, a deactivated
// account, and a wrong password all fail with ErrInvalidCredentials.
// Recording last-login is best-effort and never blocks the token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.AdminUser, error) {
	admin, err := s.store.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("look up admin: %w", err)
	}

	if !admin.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if !VerifyPassword(password, admin.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	if err := s.store.UpdateAdminLastLogin(ctx, admin.ID); err != nil {
		s.logger.Warn("failed to record last login", "username", username, "error", err)
	}

	token, err := s.IssueToken(admin.Username, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, admin, nil
}

// IssueToken creates a signed HS256 token asserting the subject for ttl.
func (s *AuthService) IssueToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		Issuer:    "churchapi",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// TokenTTL returns the configured token lifetime, for login responses.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// Authorize validates a presented bearer token and resolves it to an active
// admin account. The chain is: signature, expiry (wall clock at verification
// time), subject presence, then subject lookup. Any failed check is terminal.
func (s *AuthService) Authorize(ctx context.Context, tokenStr string) (*model.AdminUser, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	admin, err := s.store.GetAdminByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSubjectDisabled
		}
		return nil, fmt.Errorf("resolve token subject: %w", err)
	}
	if !admin.IsActive {
		return nil, ErrSubjectDisabled
	}

	return admin, nil
}

// IsAuthError reports whether err is one of the authentication failure
// sentinels, as opposed to a store outage.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrSubjectDisabled)
}
