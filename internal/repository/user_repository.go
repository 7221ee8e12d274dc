package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizhub/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	var user entity.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, is_admin, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, entity.ErrUserNotFound
	}
	if err != nil {
		return entity.User{}, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}

// Create inserts a non-admin user. The admin flag is only ever set by
// out-of-band administrative action, never through this path.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (entity.User, error) {
	var user entity.User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, is_admin, created_at
	`, username, passwordHash).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)

	if err != nil {
		return entity.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// UpdatePasswordHash overwrites a user's stored digest. Used by the
// password-reset utility.
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE users SET password_hash = $1 WHERE username = $2
	`, passwordHash, username)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	if affected == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}
