package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "tourdesk/internal/config"
	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
)

// UserRepository stores dashboard operator accounts.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByLogin looks a user up by email or username and returns the stored
// password hash alongside the profile.
func (r UserRepository) GetByLogin(login string) (models.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return models.User{}, "", domain.ValidationError{Field: "login", Msg: "login is required"}
	}

	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, name, username, email, phone, password_hash, role, status, created_at
		FROM users
		WHERE email = ? OR username = ?
		LIMIT 1`, login, login).Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &hash, &u.Role, &u.Status, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, "", err
	}
	return u, hash, nil
}

// Exists reports whether email or username is already taken.
func (r UserRepository) Exists(email, username string) (bool, error) {
	var count int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM users WHERE email = ? OR username = ?`,
		email, username).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts an operator account and returns its id.
func (r UserRepository) Create(u models.User, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`,
		u.Name, u.Username, u.Email, u.Phone, passwordHash, u.Role, u.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
