package models

import "time"

type Class struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	AdminID int    `json:"admin_id"`
	// AdminName is a snapshot of the admin's username taken when the class
	// is created. Later username changes do not update it.
	AdminName string    `json:"admin_name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateClassRequest struct {
	Name          string `json:"name" binding:"required"`
	AdminUsername string `json:"admin_username" binding:"required"`
	AdminPassword string `json:"admin_password" binding:"required,min=8"`
}
