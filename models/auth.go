package models

import (
	"github.com/golang-jwt/jwt/v5"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Data  User   `json:"data"`
	Token string `json:"token"`
}

type Claims struct {
	UserID int  `json:"user_id"`
	Role   Role `json:"role"`
	jwt.RegisteredClaims
}

// Actor is the authenticated identity making a request. It is established
// by the auth middleware and passed explicitly to every scoped operation.
type Actor struct {
	ID   int
	Role Role
}
