package middlewares

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/Reivaj85/TaskManagerApplication/internal/services"
)

type AuthMiddleware struct {
	secret []byte
}

type AuthResult struct {
	UserID   uuid.UUID
	Username string
	Valid    bool
	Error    string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(jwtSecret)}
}

// RequireAuth enforces authentication
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		result := am.authenticateRequest(c)

		if !result.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": result.Error,
				"code":  "AUTHENTICATION_REQUIRED",
			})
			c.Abort()
			return
		}

		// Set context values
		c.Set("user_id", result.UserID)
		c.Set("username", result.Username)
		c.Set("authenticated", true)

		c.Next()
	}
}

// authenticateRequest handles the core authentication logic
func (am *AuthMiddleware) authenticateRequest(c *gin.Context) *AuthResult {
	// Extract authorization header
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return &AuthResult{
			Valid: false,
			Error: "Authorization header required",
		}
	}

	// Parse Bearer token
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return &AuthResult{
			Valid: false,
			Error: "Invalid authorization format. Expected 'Bearer <token>'",
		}
	}

	token := tokenParts[1]
	if token == "" {
		return &AuthResult{
			Valid: false,
			Error: "Empty authorization token",
		}
	}

	return am.validateToken(token)
}

// validateToken verifies the signature and expiry of a session token.
func (am *AuthMiddleware) validateToken(tokenString string) *AuthResult {
	claims := &services.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return am.secret, nil
	})
	if err != nil || !token.Valid {
		log.Printf("Token validation failed: %v", err)
		return &AuthResult{
			Valid: false,
			Error: "Invalid or expired token",
		}
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		log.Printf("Token subject is not a valid user id: %v", err)
		return &AuthResult{
			Valid: false,
			Error: "Invalid or expired token",
		}
	}

	return &AuthResult{
		Valid:    true,
		UserID:   userID,
		Username: claims.Username,
	}
}

// GetAuthenticatedUser helper function for handlers
func GetAuthenticatedUser(c *gin.Context) (uuid.UUID, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	if authenticated, ok := c.Get("authenticated"); !ok || authenticated != true {
		return uuid.Nil, false
	}

	userID, ok := userIDVal.(uuid.UUID)
	return userID, ok
}
