package store

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"school_backend/models"
)

func TestRecordAttendanceInvalidStatus(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	for _, status := range []string{"late", "excused", "PRESENT", ""} {
		if _, err := RecordAttendance(db, 7, status); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("status %q: expected ErrInvalidStatus, got %v", status, err)
		}
	}
}

func TestRecordAttendanceAppends(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	// Two same-day calls both insert; nothing is updated.
	mock.ExpectQuery(`INSERT INTO attendance_records`).
		WithArgs(7, "present").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date"}).AddRow(1, time.Now()))
	mock.ExpectQuery(`INSERT INTO attendance_records`).
		WithArgs(7, "present").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date"}).AddRow(2, time.Now()))

	first, err := RecordAttendance(db, 7, models.StatusPresent)
	if err != nil {
		t.Fatalf("first RecordAttendance: %v", err)
	}
	second, err := RecordAttendance(db, 7, models.StatusPresent)
	if err != nil {
		t.Fatalf("second RecordAttendance: %v", err)
	}
	if first.ID == second.ID {
		t.Error("same-day duplicate should create a new record")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordMarkNonFinite(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	for _, mark := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := RecordMark(db, 7, 1, mark); !errors.Is(err, ErrInvalidMark) {
			t.Errorf("mark %v: expected ErrInvalidMark, got %v", mark, err)
		}
	}
}

func TestRecordMarkAcceptsOutOfRangeValues(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	// No domain bound: negative and >100 marks are stored as-is.
	mock.ExpectQuery(`INSERT INTO mark_records`).
		WithArgs(7, 1, -5.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO mark_records`).
		WithArgs(7, 1, 250.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	if _, err := RecordMark(db, 7, 1, -5); err != nil {
		t.Fatalf("RecordMark(-5): %v", err)
	}
	if _, err := RecordMark(db, 7, 1, 250); err != nil {
		t.Fatalf("RecordMark(250): %v", err)
	}
}

func TestListAttendanceForStudent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM attendance_records`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "date", "status"}).
			AddRow(1, 7, time.Now(), "present").
			AddRow(2, 7, time.Now(), "absent"))

	records, err := ListAttendanceForStudent(db, 7)
	if err != nil {
		t.Fatalf("ListAttendanceForStudent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Status != "present" || records[1].Status != "absent" {
		t.Errorf("unexpected record order: %+v", records)
	}
}

func TestListMarksForStudentJoinsSubject(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`JOIN subjects`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "subject_id", "mark", "name", "code"}).
			AddRow(1, 7, 2, 85.5, "Mathematics", "MATH"))

	marks, err := ListMarksForStudent(db, 7)
	if err != nil {
		t.Fatalf("ListMarksForStudent: %v", err)
	}
	if len(marks) != 1 || marks[0].SubjectName != "Mathematics" || marks[0].Mark != 85.5 {
		t.Errorf("unexpected marks: %+v", marks)
	}
}
