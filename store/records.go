package store

import (
	"math"

	"school_backend/models"
)

// RecordAttendance appends an attendance entry dated now. A same-day entry
// for the student is never updated; duplicates accumulate and the metrics
// aggregate over all of them.
func RecordAttendance(q DBTX, studentID int, status string) (*models.AttendanceRecord, error) {
	if status != models.StatusPresent && status != models.StatusAbsent {
		return nil, ErrInvalidStatus
	}

	r := models.AttendanceRecord{StudentID: studentID, Status: status}
	err := q.QueryRow(
		`INSERT INTO attendance_records (student_id, date, status)
		 VALUES ($1, NOW(), $2)
		 RETURNING id, date`,
		studentID, status,
	).Scan(&r.ID, &r.Date)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// RecordMark appends a mark entry. Marks are unbounded by design; only
// non-finite values are rejected. Multiple marks per (student, subject)
// accumulate.
func RecordMark(q DBTX, studentID, subjectID int, mark float64) (*models.MarkRecord, error) {
	if math.IsNaN(mark) || math.IsInf(mark, 0) {
		return nil, ErrInvalidMark
	}

	m := models.MarkRecord{StudentID: studentID, SubjectID: subjectID, Mark: mark}
	err := q.QueryRow(
		`INSERT INTO mark_records (student_id, subject_id, mark)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		studentID, subjectID, mark,
	).Scan(&m.ID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListAttendanceForStudent returns a student's attendance entries in
// chronological order.
func ListAttendanceForStudent(q DBTX, studentID int) ([]models.AttendanceRecord, error) {
	rows, err := q.Query(
		`SELECT id, student_id, date, status FROM attendance_records
		 WHERE student_id = $1
		 ORDER BY date, id`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.AttendanceRecord{}
	for rows.Next() {
		var r models.AttendanceRecord
		if err := rows.Scan(&r.ID, &r.StudentID, &r.Date, &r.Status); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ListMarksForStudent returns a student's marks joined with subject name
// and code for display.
func ListMarksForStudent(q DBTX, studentID int) ([]models.StudentMark, error) {
	rows, err := q.Query(
		`SELECT m.id, m.student_id, m.subject_id, m.mark, s.name, s.code
		 FROM mark_records m
		 JOIN subjects s ON s.id = m.subject_id
		 WHERE m.student_id = $1
		 ORDER BY m.id`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	marks := []models.StudentMark{}
	for rows.Next() {
		var m models.StudentMark
		if err := rows.Scan(&m.ID, &m.StudentID, &m.SubjectID, &m.Mark, &m.SubjectName, &m.SubjectCode); err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

// ListMarksForClass returns every mark of a class joined with student and
// subject for the admin view.
func ListMarksForClass(q DBTX, classID int) ([]models.ClassMark, error) {
	rows, err := q.Query(
		`SELECT m.id, m.student_id, m.subject_id, m.mark,
		        st.full_name, st.student_code, su.name
		 FROM mark_records m
		 JOIN students st ON st.id = m.student_id
		 JOIN subjects su ON su.id = m.subject_id
		 WHERE st.class_id = $1
		 ORDER BY m.id`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	marks := []models.ClassMark{}
	for rows.Next() {
		var m models.ClassMark
		if err := rows.Scan(&m.ID, &m.StudentID, &m.SubjectID, &m.Mark,
			&m.StudentName, &m.StudentCode, &m.SubjectName); err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}
