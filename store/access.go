package store

import (
	"school_backend/models"
)

// ResolveOwnedClass finds the single class owned by an admin. Returns
// ErrNotFound if the admin owns no class and ErrAmbiguousOwnership if more
// than one class claims the admin, which the classes.admin_id UNIQUE
// constraint should make impossible.
func ResolveOwnedClass(q DBTX, adminUserID int) (*models.Class, error) {
	rows, err := q.Query(
		`SELECT id, name, admin_id, admin_name, created_at FROM classes
		 WHERE admin_id = $1`, adminUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []models.Class
	for rows.Next() {
		var c models.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.AdminID, &c.AdminName, &c.CreatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(classes) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &classes[0], nil
	default:
		return nil, ErrAmbiguousOwnership
	}
}

// AuthorizeStudentAccess checks that the actor may act on the target
// student and returns the student record. Students may only access
// themselves; admins only students of the class they own. Returns
// ErrNotFound if the target does not exist and ErrForbidden on any scope
// violation.
func AuthorizeStudentAccess(q DBTX, actor models.Actor, targetStudentID int) (*models.Student, error) {
	student, err := GetStudent(q, targetStudentID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case models.RoleStudent:
		if actor.ID != targetStudentID {
			return nil, ErrForbidden
		}
		return student, nil
	case models.RoleAdmin:
		class, err := ResolveOwnedClass(q, actor.ID)
		if err == ErrNotFound {
			return nil, ErrForbidden
		}
		if err != nil {
			return nil, err
		}
		if student.ClassID != class.ID {
			return nil, ErrForbidden
		}
		return student, nil
	default:
		// Superadmins have no student-record surface.
		return nil, ErrForbidden
	}
}
