package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // "-" means this field won't be included in JSON
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type UpdateAdminRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}
