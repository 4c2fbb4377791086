package store

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Failure taxonomy shared by every store operation. Handlers translate
// these into HTTP status codes with errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidStatus      = errors.New("invalid attendance status")
	ErrInvalidMark        = errors.New("mark must be a finite number")
	// ErrAmbiguousOwnership is an internal-consistency fault: more than one
	// class claims the same admin. It must surface as a generic 500.
	ErrAmbiguousOwnership = errors.New("admin owns more than one class")
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so store operations can
// run standalone or inside a transaction.
type DBTX interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
