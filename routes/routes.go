package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"school_backend/handlers"
	"school_backend/middleware"
	"school_backend/models"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, db *sql.DB, jwtSecret []byte) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(db, jwtSecret)
	classHandler := handlers.NewClassHandler(db)
	adminHandler := handlers.NewAdminHandler(db)
	subjectHandler := handlers.NewSubjectHandler(db)
	studentHandler := handlers.NewStudentHandler(db)
	attendanceHandler := handlers.NewAttendanceHandler(db)
	markHandler := handlers.NewMarkHandler(db)
	portalHandler := handlers.NewStudentPortalHandler(db)

	// Public routes
	r.GET("/health", healthHandler.HealthCheck)
	r.POST("/login", authHandler.Login)

	authenticated := r.Group("/")
	authenticated.Use(middleware.AuthMiddleware(jwtSecret))

	// Superadmin: classes, admins, subject catalogue
	super := authenticated.Group("/")
	super.Use(middleware.RequireRole(models.RoleSuperAdmin))
	{
		super.POST("/classes", classHandler.CreateClass)
		super.GET("/classes", classHandler.GetClasses)
		super.DELETE("/classes/:id", classHandler.DeleteClass)

		super.PUT("/admins/:id", adminHandler.UpdateAdmin)
		super.DELETE("/admins/:id", adminHandler.DeleteAdmin)

		super.POST("/subjects", subjectHandler.CreateSubject)
		super.GET("/subjects", subjectHandler.GetSubjects)
		super.DELETE("/subjects/:id", subjectHandler.DeleteSubject)
	}

	// Admin: own class only; every handler resolves the owned class first
	admin := authenticated.Group("/")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("/students", studentHandler.CreateStudent)
		admin.GET("/students", studentHandler.GetStudents)
		admin.DELETE("/students/:id", studentHandler.DeleteStudent)

		admin.GET("/attendance", attendanceHandler.GetAttendanceSheet)
		admin.POST("/attendance", attendanceHandler.CreateAttendance)

		admin.POST("/marks", markHandler.CreateMark)
		admin.GET("/marks", markHandler.GetMarks)
	}

	// Student: self-service endpoints
	student := authenticated.Group("/student")
	student.Use(middleware.RequireRole(models.RoleStudent))
	{
		student.GET("/info", portalHandler.GetInfo)
		student.GET("/attendance", portalHandler.GetAttendance)
		student.GET("/performance", portalHandler.GetPerformance)
	}
}
