package models

import "time"

type Student struct {
	ID           int       `json:"id"`
	StudentCode  string    `json:"student_id"` // external student code, not the row id
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ClassID      int       `json:"class_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateStudentRequest struct {
	StudentCode string `json:"student_id" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
}
