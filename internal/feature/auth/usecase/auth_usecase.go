package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"recipe_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8

	// refreshTokenBytes is the number of random bytes in a refresh token
	// (64 hex characters once encoded).
	refreshTokenBytes = 32

	// maxSessionsPerUser caps the number of concurrent refresh sessions.
	// The oldest session is evicted when the cap is reached.
	maxSessionsPerUser = 5
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenGenerator abstracts access-token generation.
// Following Go convention: the interface is defined by the consumer (usecase), not the provider (platform/jwt).
type TokenGenerator interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// LoginResult carries the token pair issued on successful authentication.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
}

// ClientInfo describes the client a session was created from.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// AuthUsecase implements signup, login and refresh-token session management.
type AuthUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	tokens     TokenGenerator
	refreshTTL time.Duration
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, tokens TokenGenerator, refreshTTL time.Duration) *AuthUsecase {
	return &AuthUsecase{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		refreshTTL: refreshTTL,
	}
}

// NormalizeEmail lowercases the domain part of an email address.
// The local part is preserved as entered.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup registers a new user with a hashed password.
// The email is required and normalized before persisting.
func (u *AuthUsecase) Signup(ctx context.Context, email, password, name string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return fmt.Errorf("user must have an email address")
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     name,
		IsActive: true,
	}
	return u.users.Create(ctx, user)
}

// Login authenticates a user and returns an access/refresh token pair.
// A bcrypt comparison runs even when the user does not exist, so lookup
// failures are not distinguishable by timing.
func (u *AuthUsecase) Login(ctx context.Context, email, password string, client ClientInfo) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, NormalizeEmail(email))

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the failure path too.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	access, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	refresh, err := u.createSession(ctx, user.ID, client)
	if err != nil {
		return nil, err
	}

	return &LoginResult{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh rotates a refresh session and issues a new token pair.
// The presented session is revoked regardless of whether rotation succeeds,
// so a leaked token can be replayed at most once.
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string, client ClientInfo) (*LoginResult, error) {
	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if !session.IsValid() {
		return nil, ErrInvalidRefreshToken
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil || !user.IsActive {
		return nil, ErrInvalidRefreshToken
	}

	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke session: %w", err)
	}

	access, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	refresh, err := u.createSession(ctx, user.ID, client)
	if err != nil {
		return nil, err
	}

	return &LoginResult{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout revokes the session identified by the refresh token.
func (u *AuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	if err := u.sessions.Revoke(ctx, refreshToken); err != nil {
		return ErrInvalidRefreshToken
	}
	return nil
}

// CurrentUser returns the profile of the authenticated user.
func (u *AuthUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// createSession mints a refresh token, evicts the oldest session when the
// per-user cap is reached, and persists the new session.
func (u *AuthUsecase) createSession(ctx context.Context, userID uint, client ClientInfo) (string, error) {
	token, err := newRefreshToken()
	if err != nil {
		return "", err
	}

	count, err := u.sessions.CountByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to count sessions: %w", err)
	}
	if count >= maxSessionsPerUser {
		if err := u.sessions.DeleteOldestByUserID(ctx, userID); err != nil {
			return "", fmt.Errorf("failed to evict oldest session: %w", err)
		}
	}

	now := time.Now()
	session := &entity.Session{
		ID:        token,
		UserID:    userID,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.refreshTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}

// newRefreshToken returns a cryptographically random 64-character hex string.
func newRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
