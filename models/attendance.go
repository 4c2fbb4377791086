package models

import "time"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

type AttendanceRecord struct {
	ID        int       `json:"id"`
	StudentID int       `json:"student_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
}

type CreateAttendanceRequest struct {
	StudentID int    `json:"student_id" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=present absent"`
}

type StudentAttendanceResponse struct {
	Percent float64            `json:"percent"`
	Records []AttendanceRecord `json:"records"`
}
