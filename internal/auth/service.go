package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/furnimed/catalog-admin/internal"
	"github.com/furnimed/catalog-admin/internal/user"
)

// UserRepository is the persistence surface the auth service needs.
type UserRepository interface {
	GetByUsername(username string) (*user.User, error)
	ExistsByUsername(username string) (bool, error)
	Create(u *user.User) error
}

// Service handles registration, credential checks and session lifecycle.
type Service struct {
	users      UserRepository
	sessions   SessionStore
	bcryptCost int
	sessionTTL time.Duration
	logger     *slog.Logger
}

func NewService(users UserRepository, sessions SessionStore, bcryptCost int, sessionTTL time.Duration, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		users:      users,
		sessions:   sessions,
		bcryptCost: bcryptCost,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Register stores a new user with role "user". Duplicate usernames fail with
// ErrUsernameTaken.
func (s *Service) Register(dto CredentialsDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	taken, err := s.users.ExistsByUsername(dto.Username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if taken {
		return internal.ErrUsernameTaken
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(&user.User{
		Username:     dto.Username,
		PasswordHash: hash,
		Role:         user.RoleUser,
	})
}

// Login verifies credentials and creates a session. An unknown username and a
// wrong password produce the same error so usernames cannot be enumerated.
func (s *Service) Login(ctx context.Context, dto CredentialsDTO) (*Session, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByUsername(dto.Username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, internal.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	session := &Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Username:  u.Username,
		Role:      u.Role,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	s.logger.Info("session created", "user_id", u.ID, "role", u.Role)
	return session, nil
}

// Logout destroys the session. Deleting an already-gone session is fine; only
// a failing store surfaces an error.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Session resolves a cookie-borne identifier to the server-side session.
func (s *Service) Session(ctx context.Context, sessionID string) (*Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

// HashPassword creates a bcrypt hash of the password.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
