package models

type MarkRecord struct {
	ID        int     `json:"id"`
	StudentID int     `json:"student_id"`
	SubjectID int     `json:"subject_id"`
	Mark      float64 `json:"mark"`
}

// Mark has no "required" binding: zero is a legitimate mark.
type CreateMarkRequest struct {
	StudentID int     `json:"student_id" binding:"required"`
	SubjectID int     `json:"subject_id" binding:"required"`
	Mark      float64 `json:"mark"`
}

// StudentMark is a mark joined with its subject for the student view.
type StudentMark struct {
	MarkRecord
	SubjectName string `json:"subject_name"`
	SubjectCode string `json:"subject_code"`
}

// ClassMark is a mark joined with student and subject for the admin view.
type ClassMark struct {
	MarkRecord
	StudentName string `json:"student_name"`
	StudentCode string `json:"student_code"`
	SubjectName string `json:"subject_name"`
}

type StudentPerformanceResponse struct {
	Average float64       `json:"average"`
	Scores  []StudentMark `json:"scores"`
}
