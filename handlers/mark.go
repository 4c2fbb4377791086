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

type MarkHandler struct {
	db *sql.DB
}

func NewMarkHandler(db *sql.DB) *MarkHandler {
	return &MarkHandler{db: db}
}

// CreateMark records a mark for a student of the caller's class. Several
// marks may accumulate per subject; the average aggregates all of them.
func (h *MarkHandler) CreateMark(c *gin.Context) {
	actor := middleware.Actor(c)

	var req models.CreateMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := store.AuthorizeStudentAccess(h.db, actor, req.StudentID); err != nil {
		respondAccessError(c, err, "record mark")
		return
	}

	record, err := store.RecordMark(h.db, req.StudentID, req.SubjectID, req.Mark)
	if errors.Is(err, store.ErrInvalidMark) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mark must be a finite number"})
		return
	}
	if err != nil {
		log.Printf("Error recording mark: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record mark"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetMarks lists the caller's class marks joined with student and subject.
func (h *MarkHandler) GetMarks(c *gin.Context) {
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

	marks, err := store.ListMarksForClass(h.db, class.ID)
	if err != nil {
		log.Printf("Error fetching marks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch marks"})
		return
	}

	c.JSON(http.StatusOK, marks)
}
