package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"school_backend/metrics"
	"school_backend/middleware"
	"school_backend/models"
	"school_backend/store"
)

// StudentPortalHandler serves the student-facing self-service endpoints.
// Every operation authorizes the actor against the requested student id,
// which for these routes is always the actor's own.
type StudentPortalHandler struct {
	db *sql.DB
}

func NewStudentPortalHandler(db *sql.DB) *StudentPortalHandler {
	return &StudentPortalHandler{db: db}
}

// GetInfo returns the student's own record.
func (h *StudentPortalHandler) GetInfo(c *gin.Context) {
	actor := middleware.Actor(c)

	student, err := store.AuthorizeStudentAccess(h.db, actor, actor.ID)
	if err != nil {
		respondAccessError(c, err, "read student info")
		return
	}

	c.JSON(http.StatusOK, student)
}

// GetAttendance returns the student's attendance percentage alongside the
// raw records.
func (h *StudentPortalHandler) GetAttendance(c *gin.Context) {
	actor := middleware.Actor(c)

	student, err := store.AuthorizeStudentAccess(h.db, actor, actor.ID)
	if err != nil {
		respondAccessError(c, err, "read attendance")
		return
	}

	records, err := store.ListAttendanceForStudent(h.db, student.ID)
	if err != nil {
		log.Printf("Error fetching attendance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendance"})
		return
	}

	c.JSON(http.StatusOK, models.StudentAttendanceResponse{
		Percent: metrics.AttendancePercentage(records),
		Records: records,
	})
}

// GetPerformance returns the student's average mark alongside the raw
// scores joined with their subjects.
func (h *StudentPortalHandler) GetPerformance(c *gin.Context) {
	actor := middleware.Actor(c)

	student, err := store.AuthorizeStudentAccess(h.db, actor, actor.ID)
	if err != nil {
		respondAccessError(c, err, "read performance")
		return
	}

	scores, err := store.ListMarksForStudent(h.db, student.ID)
	if err != nil {
		log.Printf("Error fetching marks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch marks"})
		return
	}

	c.JSON(http.StatusOK, models.StudentPerformanceResponse{
		Average: metrics.AverageMark(scores),
		Scores:  scores,
	})
}
