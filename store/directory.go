package store

import (
	"database/sql"

	"school_backend/models"
)

// CreateClass creates the admin account and its class in one transaction,
// snapshotting the admin's username into admin_name. The users.username and
// classes.admin_id UNIQUE constraints keep concurrent duplicate attempts
// from both succeeding.
func CreateClass(db *sql.DB, name, adminUsername, adminPassword string) (*models.Class, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}

	admin, err := CreateAdmin(tx, adminUsername, adminPassword)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	class := models.Class{Name: name, AdminID: admin.ID, AdminName: admin.Username}
	err = tx.QueryRow(
		`INSERT INTO classes (name, admin_id, admin_name) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		name, admin.ID, admin.Username,
	).Scan(&class.ID, &class.CreatedAt)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &class, nil
}

// ListClasses returns all classes ordered by creation time.
func ListClasses(q DBTX) ([]models.Class, error) {
	rows, err := q.Query(
		`SELECT id, name, admin_id, admin_name, created_at FROM classes
		 ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []models.Class{}
	for rows.Next() {
		var c models.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.AdminID, &c.AdminName, &c.CreatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// DeleteClass removes a class. Students, attendance, and marks of the class
// are deliberately left in place; see the orphaning policy in DESIGN.md.
func DeleteClass(q DBTX, classID int) error {
	result, err := q.Exec(`DELETE FROM classes WHERE id = $1`, classID)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

// CreateSubject adds a subject to the global catalogue.
func CreateSubject(q DBTX, name, code string) (*models.Subject, error) {
	s := models.Subject{Name: name, Code: code}
	err := q.QueryRow(
		`INSERT INTO subjects (name, code) VALUES ($1, $2) RETURNING id`,
		name, code,
	).Scan(&s.ID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSubjects returns the global subject catalogue.
func ListSubjects(q DBTX) ([]models.Subject, error) {
	rows, err := q.Query(`SELECT id, name, code FROM subjects ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := []models.Subject{}
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Code); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// DeleteSubject removes a subject, returning ErrNotFound if absent.
func DeleteSubject(q DBTX, subjectID int) error {
	result, err := q.Exec(`DELETE FROM subjects WHERE id = $1`, subjectID)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

// CreateStudent enrolls a student into a class. classID must come from
// ResolveOwnedClass, never from client input. Returns ErrDuplicateEmail if
// the email is already enrolled; emails identify students at login, so the
// students.email UNIQUE constraint keeps one credential from shadowing
// another.
func CreateStudent(q DBTX, classID int, code, fullName, email, password string) (*models.Student, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	s := models.Student{StudentCode: code, FullName: fullName, Email: email, ClassID: classID}
	err = q.QueryRow(
		`INSERT INTO students (student_code, full_name, email, password_hash, class_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		code, fullName, email, hashed, classID,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &s, nil
}

// ListStudentsForClass returns the roster of one class ordered by
// enrollment time.
func ListStudentsForClass(q DBTX, classID int) ([]models.Student, error) {
	rows, err := q.Query(
		`SELECT id, student_code, full_name, email, class_id, created_at
		 FROM students WHERE class_id = $1
		 ORDER BY created_at, id`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.StudentCode, &s.FullName, &s.Email, &s.ClassID, &s.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudent fetches a student by row id, returning ErrNotFound if absent.
func GetStudent(q DBTX, studentID int) (*models.Student, error) {
	var s models.Student
	err := q.QueryRow(
		`SELECT id, student_code, full_name, email, class_id, created_at
		 FROM students WHERE id = $1`, studentID,
	).Scan(&s.ID, &s.StudentCode, &s.FullName, &s.Email, &s.ClassID, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteStudent removes a student. Attendance and mark records are left in
// place by policy.
func DeleteStudent(q DBTX, studentID int) error {
	result, err := q.Exec(`DELETE FROM students WHERE id = $1`, studentID)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}
