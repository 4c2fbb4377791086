package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"school_backend/middleware"
	"school_backend/models"
	"school_backend/store"
)

type AttendanceHandler struct {
	db *sql.DB
}

func NewAttendanceHandler(db *sql.DB) *AttendanceHandler {
	return &AttendanceHandler{db: db}
}

// GetAttendanceSheet returns the roster of the caller's class, the list the
// admin marks attendance against.
func (h *AttendanceHandler) GetAttendanceSheet(c *gin.Context) {
	actor := middleware.Actor(c)

	class, err := store.ResolveOwnedClass(h.db, actor.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No class assigned to this admin"})
		return
	}
	if err != nil {
		log.Printf("Error resolving owned class: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve class"})
		return
	}

	students, err := store.ListStudentsForClass(h.db, class.ID)
	if err != nil {
		log.Printf("Error fetching roster: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch roster"})
		return
	}

	c.JSON(http.StatusOK, students)
}

// CreateAttendance records present/absent for a student of the caller's
// class, dated now. Repeated calls on the same day append new entries.
func (h *AttendanceHandler) CreateAttendance(c *gin.Context) {
	actor := middleware.Actor(c)

	var req models.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := store.AuthorizeStudentAccess(h.db, actor, req.StudentID); err != nil {
		respondAccessError(c, err, "record attendance")
		return
	}

	record, err := store.RecordAttendance(h.db, req.StudentID, req.Status)
	if errors.Is(err, store.ErrInvalidStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be present or absent"})
		return
	}
	if err != nil {
		log.Printf("Error recording attendance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record attendance"})
		return
	}

	c.JSON(http.StatusCreated, record)
}
