package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"adsdash/internal/auth"
	"adsdash/internal/domain"
	"adsdash/pkg/logger"
	"adsdash/pkg/metrics"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords
// so login responses never reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService verifies credentials against the user store and issues
// session tokens.
type AuthService struct {
	users   domain.UserRepository
	tokens  *auth.TokenManager
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// NewAuthService creates a new auth service
func NewAuthService(
	users domain.UserRepository,
	tokens *auth.TokenManager,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *AuthService {
	return &AuthService{
		users:   users,
		tokens:  tokens,
		logger:  logger,
		metrics: metrics,
	}
}

// Login checks a username/password pair and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	log := s.logger.WithContext(ctx).WithField("username", username)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.metrics.RecordAuthAttempt("unknown_user")
			log.Info("Login attempt for unknown user")
			return "", ErrInvalidCredentials
		}
		s.metrics.RecordAuthAttempt("store_error")
		log.WithError(err).Error("Failed to look up user")
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.metrics.RecordAuthAttempt("wrong_password")
		log.Info("Login attempt with wrong password")
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		s.metrics.RecordAuthAttempt("token_error")
		log.WithError(err).Error("Failed to generate session token")
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	s.metrics.RecordAuthAttempt("success")
	log.Info("Login successful")
	return token, nil
}
