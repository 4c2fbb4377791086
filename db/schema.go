package db

import (
	"database/sql"
	"fmt"
)

// Foreign-key cascades between classes, students, and their records are
// deliberately absent: deleting a class or student orphans dependent rows
// instead of cleaning them up. attendance_records has no uniqueness on
// (student_id, date) and mark_records none on (student_id, subject_id);
// duplicate entries accumulate and aggregation handles them.
const Schema = `
-- Create users table (staff accounts: superadmin and class admins)
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    role VARCHAR(50) NOT NULL CHECK (role IN ('superadmin', 'admin')),
    created_at TIMESTAMPTZ DEFAULT NOW()
);

-- Create classes table; UNIQUE(admin_id) enforces one class per admin
CREATE TABLE IF NOT EXISTS classes (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    admin_id INTEGER NOT NULL UNIQUE,
    admin_name VARCHAR(255) NOT NULL,
    created_at TIMESTAMPTZ DEFAULT NOW()
);

-- Create students table; email is the student login identifier, so it
-- must be unique across classes
CREATE TABLE IF NOT EXISTS students (
    id SERIAL PRIMARY KEY,
    student_code VARCHAR(100) NOT NULL,
    full_name VARCHAR(255) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    class_id INTEGER NOT NULL,
    created_at TIMESTAMPTZ DEFAULT NOW()
);

-- Create subjects table (global, not class-scoped)
CREATE TABLE IF NOT EXISTS subjects (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    code VARCHAR(100) NOT NULL
);

-- Create attendance_records table
CREATE TABLE IF NOT EXISTS attendance_records (
    id SERIAL PRIMARY KEY,
    student_id INTEGER NOT NULL,
    date TIMESTAMPTZ NOT NULL,
    status VARCHAR(50) NOT NULL
);

-- Create mark_records table
CREATE TABLE IF NOT EXISTS mark_records (
    id SERIAL PRIMARY KEY,
    student_id INTEGER NOT NULL,
    subject_id INTEGER NOT NULL,
    mark DOUBLE PRECISION NOT NULL
);
`

// InitSchema initializes the database schema
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	if err != nil {
		return fmt.Errorf("error initializing database schema: %w", err)
	}
	return nil
}
