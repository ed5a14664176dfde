// Package application holds the service layer between driving and driven
// adapters.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ericfisherdev/foliopanel/internal/domain/model"
	"github.com/ericfisherdev/foliopanel/internal/domain/port/driven"
)

var (
	// ErrInvalidCredentials is returned on login failure. It deliberately
	// covers both "unknown user" and "wrong password" so responses cannot
	// be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a presented session token fails
	// signature or expiry checks.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Identity is the authenticated principal extracted from a session token.
type Identity struct {
	UserID   int64
	Username string
}

// sessionClaims is the JWT payload: the user id travels in the registered
// subject claim, the username in a private claim.
type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies HS256 session tokens against the single
// stored admin credential. It keeps no per-session state; a token is valid
// until its embedded expiry and cannot be revoked earlier.
type AuthService struct {
	admins driven.AdminStore
	secret []byte
	ttl    time.Duration
	logger *slog.Logger
}

// NewAuthService creates an AuthService signing tokens with the given
// secret and lifetime.
func NewAuthService(admins driven.AdminStore, secret string, ttl time.Duration, logger *slog.Logger) *AuthService {
	return &AuthService{
		admins: admins,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}
}

// EnsureAdmin provisions the credential row at first startup. If the
// username already exists, nothing happens; the stored password is never
// rotated automatically.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.admins.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, driven.ErrNotFound) {
		return fmt.Errorf("look up admin %q: %w", username, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if _, err := s.admins.Create(ctx, model.AdminUser{Username: username, PasswordHash: string(hash)}); err != nil {
		return fmt.Errorf("create admin %q: %w", username, err)
	}

	s.logger.Info("default admin credential provisioned", "username", username)
	return nil
}

// Login verifies the submitted credential and returns a signed session
// token with the configured lifetime.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.admins.GetByUsername(ctx, username)
	if errors.Is(err, driven.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("look up admin %q: %w", username, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := sessionClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return token, nil
}

// Verify checks a session token's signature and expiry and returns the
// identity it carries. Any failure collapses to ErrInvalidToken.
func (s *AuthService) Verify(tokenString string) (*Identity, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: id, Username: claims.Username}, nil
}
