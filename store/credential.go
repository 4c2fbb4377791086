package store

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt"

	"school_backend/models"
)

// dummyHash keeps the cost of a failed lookup close to the cost of a failed
// password comparison, so login timing does not reveal whether an account
// exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword creates a bcrypt hash of a password. bcrypt embeds a random
// per-record salt in the hash.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword checks if a password matches the hashed version in
// constant time.
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// Authenticate verifies login credentials. Staff (superadmin and admin)
// accounts are looked up by username; student accounts by email. Returns
// ErrInvalidCredentials when no account matches or the password is wrong.
func Authenticate(q DBTX, username, password string) (*models.User, error) {
	var u models.User
	err := q.QueryRow(
		`SELECT id, username, password_hash, role, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return authenticateStudent(q, username, password)
	}
	if err != nil {
		return nil, err
	}

	if !VerifyPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

func authenticateStudent(q DBTX, email, password string) (*models.User, error) {
	var s models.Student
	err := q.QueryRow(
		`SELECT id, email, password_hash, created_at FROM students WHERE email = $1`,
		email,
	).Scan(&s.ID, &s.Email, &s.PasswordHash, &s.CreatedAt)

	if err == sql.ErrNoRows {
		VerifyPassword(dummyHash, password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !VerifyPassword(s.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &models.User{
		ID:        s.ID,
		Username:  s.Email,
		Role:      models.RoleStudent,
		CreatedAt: s.CreatedAt,
	}, nil
}

// CreateAdmin creates an admin user with a freshly hashed password.
// Returns ErrDuplicateUsername if the username is already taken; the
// users.username UNIQUE constraint makes this hold under concurrent
// attempts as well.
func CreateAdmin(q DBTX, username, password string) (*models.User, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := models.User{Username: username, Role: models.RoleAdmin}
	err = q.QueryRow(
		`INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		username, hashed, models.RoleAdmin,
	).Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return &u, nil
}

// UpdatePassword re-hashes and replaces a user's password. Returns
// ErrNotFound if the user does not exist.
func UpdatePassword(q DBTX, userID int, newPassword string) error {
	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	result, err := q.Exec(`UPDATE users SET password_hash = $1 WHERE id = $2`, hashed, userID)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

// DeleteUser removes a user account. Returns ErrNotFound if the user was
// already absent, so callers can report the miss instead of silently
// succeeding.
func DeleteUser(q DBTX, userID int) error {
	result, err := q.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

func requireRowsAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
