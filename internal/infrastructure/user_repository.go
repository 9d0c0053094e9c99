package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adsdash/internal/domain"
	"adsdash/pkg/logger"
)

// implements domain.UserRepository backed by Postgres
type UserRepository struct {
	db     *sql.DB
	logger *logger.Logger
}

// creates a new user repository
func NewUserRepository(db *sql.DB, logger *logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash FROM users WHERE username = $1`,
		username,
	)

	var user domain.User
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}
