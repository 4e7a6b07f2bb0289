package middleware

import (
	"net/http"
	"strings"
	"time"

	"bistro-api/config"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenCookie is the name of the httponly session cookie
const TokenCookie = "token"

// TokenLifetime matches the cookie max-age
const TokenLifetime = 7 * 24 * time.Hour

type Claims struct {
	UserID       uint            `json:"user_id"`
	MobileNumber string          `json:"mobile_number"`
	Role         models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:       user.ID,
		MobileNumber: user.MobileNumber,
		Role:         user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.App.JWTSecret))
}

// extractToken reads the credential from the session cookie first,
// falling back to a Bearer authorization header
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func parseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.App.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// AuthRequired validates the session credential and injects claims into context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, no token"})
			c.Abort()
			return
		}
		claims, err := parseToken(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// OptionalAuth injects claims when a valid credential is present but
// never rejects the request. Used where anonymous access is allowed
// and the handler only needs to know whether the caller is an admin.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := extractToken(c); tokenStr != "" {
			if claims, err := parseToken(tokenStr); err == nil {
				c.Set("userID", claims.UserID)
				c.Set("role", string(claims.Role))
			}
		}
		c.Next()
	}
}

// AdminRequired enforces the admin role. Must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID extracts the caller's user ID from context (0 if anonymous)
func GetUserID(c *gin.Context) uint {
	if val, ok := c.Get("userID"); ok {
		return val.(uint)
	}
	return 0
}

// GetRole extracts the caller's role from context ("" if anonymous)
func GetRole(c *gin.Context) models.UserRole {
	if val, ok := c.Get("role"); ok {
		return models.UserRole(val.(string))
	}
	return ""
}

// IsAdmin reports whether the caller is an administrator
func IsAdmin(c *gin.Context) bool {
	return GetRole(c) == models.RoleAdmin
}
