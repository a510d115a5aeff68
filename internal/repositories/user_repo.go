package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shelterBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var count int
	check := `SELECT COUNT(*) FROM users WHERE email = ?`
	if err := r.DB.QueryRowContext(ctx, check, user.Email).Scan(&count); err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, models.ErrDuplicateEmail
	}

	query := `
INSERT INTO users (id, name, email, password, phone, user_type, role, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.Password, user.Phone, user.UserType, user.Role,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return r.GetUserByID(ctx, user.ID)
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	query := `SELECT id, name, email, password, phone, user_type, role, created_at, updated_at
                 FROM users WHERE id = ?`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `SELECT id, name, email, password, phone, user_type, role, created_at, updated_at
                 FROM users WHERE email = ?`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `UPDATE users SET name = ?, phone = ?, user_type = ?, updated_at = NOW() WHERE id = ?`
	res, err := r.DB.ExecContext(ctx, query, user.Name, user.Phone, user.UserType, user.ID)
	if err != nil {
		return models.User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, err := r.GetUserByID(ctx, user.ID); err != nil {
			return models.User{}, err
		}
	}
	return r.GetUserByID(ctx, user.ID)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, email, hashedPassword string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE users SET password = ?, updated_at = NOW() WHERE email = ?`, hashedPassword, email)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	// one session per user; a fresh sign-in replaces the old refresh token
	if err := r.DeleteSessionsByUser(ctx, session.UserID); err != nil {
		return err
	}
	query := `INSERT INTO sessions (user_id, role, refresh_token, expires_at) VALUES (?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `SELECT user_id, role, refresh_token, expires_at FROM sessions WHERE refresh_token = ?`
	var session models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, models.ErrNoRecord
		}
		return models.Session{}, err
	}
	return session, nil
}

func (r *UserRepository) DeleteSessionsByUser(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}

func (r *UserRepository) scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Phone,
		&user.UserType, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
