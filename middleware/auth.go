package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"school_backend/models"
)

const (
	actorIDKey   = "actorID"
	actorRoleKey = "actorRole"

	tokenTTL = 24 * time.Hour
)

// AuthMiddleware creates a gin middleware for JWT authentication. On
// success the actor's id and role are stored in the request context.
func AuthMiddleware(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be in the format: Bearer {token}"})
			c.Abort()
			return
		}

		claims := &models.Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtSecret, nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		if !claims.Role.Valid() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(actorIDKey, claims.UserID)
		c.Set(actorRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route group to a single role. AuthMiddleware must run
// first.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if Actor(c).Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Actor returns the authenticated actor established by AuthMiddleware.
func Actor(c *gin.Context) models.Actor {
	role, _ := c.Get(actorRoleKey)
	r, _ := role.(models.Role)
	return models.Actor{ID: c.GetInt(actorIDKey), Role: r}
}

// GenerateToken creates a signed access token carrying the actor's id and
// role.
func GenerateToken(jwtSecret []byte, userID int, role models.Role) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	return token.SignedString(jwtSecret)
}
