package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"school_backend/models"
	"school_backend/store"
)

type SubjectHandler struct {
	db *sql.DB
}

func NewSubjectHandler(db *sql.DB) *SubjectHandler {
	return &SubjectHandler{db: db}
}

// CreateSubject adds a subject to the global catalogue.
func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	var req models.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject, err := store.CreateSubject(h.db, req.Name, req.Code)
	if err != nil {
		log.Printf("Error creating subject: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subject"})
		return
	}

	c.JSON(http.StatusCreated, subject)
}

// GetSubjects retrieves all subjects.
func (h *SubjectHandler) GetSubjects(c *gin.Context) {
	subjects, err := store.ListSubjects(h.db)
	if err != nil {
		log.Printf("Error fetching subjects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subjects"})
		return
	}

	c.JSON(http.StatusOK, subjects)
}

// DeleteSubject removes a subject from the catalogue.
func (h *SubjectHandler) DeleteSubject(c *gin.Context) {
	subjectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subject id"})
		return
	}

	err = store.DeleteSubject(h.db, subjectID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subject not found"})
		return
	}
	if err != nil {
		log.Printf("Error deleting subject: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subject"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subject deleted"})
}
