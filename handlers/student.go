package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"school_backend/middleware"
	"school_backend/models"
	"school_backend/store"
)

type StudentHandler struct {
	db *sql.DB
}

func NewStudentHandler(db *sql.DB) *StudentHandler {
	return &StudentHandler{db: db}
}

// CreateStudent enrolls a student into the caller's own class. The class is
// always resolved from the actor, never taken from the request body.
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	actor := middleware.Actor(c)

	var req models.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

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

	student, err := store.CreateStudent(h.db, class.ID, req.StudentCode, req.FullName, req.Email, req.Password)
	if errors.Is(err, store.ErrDuplicateEmail) {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already enrolled"})
		return
	}
	if err != nil {
		log.Printf("Error creating student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create student"})
		return
	}

	c.JSON(http.StatusCreated, student)
}

// GetStudents lists the students of the caller's own class.
func (h *StudentHandler) GetStudents(c *gin.Context) {
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
		log.Printf("Error fetching students: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch students"})
		return
	}

	c.JSON(http.StatusOK, students)
}

// DeleteStudent removes a student, but only from the caller's own class.
// The student's attendance and mark records stay behind.
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	actor := middleware.Actor(c)

	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student id"})
		return
	}

	if _, err := store.AuthorizeStudentAccess(h.db, actor, studentID); err != nil {
		respondAccessError(c, err, "delete student")
		return
	}

	err = store.DeleteStudent(h.db, studentID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	if err != nil {
		log.Printf("Error deleting student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete student"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Student deleted"})
}

// respondAccessError translates an access-control failure into a response.
// Internal faults (including ambiguous class ownership) stay generic.
func respondAccessError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
	case errors.Is(err, store.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access to this student is not allowed"})
	default:
		log.Printf("Error authorizing %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify permissions"})
	}
}
