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

type ClassHandler struct {
	db *sql.DB
}

func NewClassHandler(db *sql.DB) *ClassHandler {
	return &ClassHandler{db: db}
}

// CreateClass creates a class together with its admin account.
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req models.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class, err := store.CreateClass(h.db, req.Name, req.AdminUsername, req.AdminPassword)
	if errors.Is(err, store.ErrDuplicateUsername) {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	}
	if err != nil {
		log.Printf("Error creating class: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create class"})
		return
	}

	c.JSON(http.StatusCreated, class)
}

// GetClasses retrieves all classes.
func (h *ClassHandler) GetClasses(c *gin.Context) {
	classes, err := store.ListClasses(h.db)
	if err != nil {
		log.Printf("Error fetching classes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch classes"})
		return
	}

	c.JSON(http.StatusOK, classes)
}

// DeleteClass removes a class. Its students and their records stay behind.
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class id"})
		return
	}

	err = store.DeleteClass(h.db, classID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}
	if err != nil {
		log.Printf("Error deleting class: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete class"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Class deleted"})
}
