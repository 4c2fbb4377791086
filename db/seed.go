package db

import (
	"database/sql"
	"fmt"

	"school_backend/models"
	"school_backend/store"
)

// SeedSuperAdmin creates the bootstrap superadmin account if it does not
// exist yet. Superadmins are only ever created out-of-band, so this is the
// single entry point for that account.
func SeedSuperAdmin(db *sql.DB, username, password string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	var exists bool
	if err := tx.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists); err != nil {
		tx.Rollback()
		return fmt.Errorf("error checking superadmin account: %w", err)
	}

	if !exists {
		hashed, err := store.HashPassword(password)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error hashing superadmin password: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3)
			 ON CONFLICT DO NOTHING`,
			username, hashed, models.RoleSuperAdmin,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding superadmin account: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}
