package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/laundryola/laundryola-api/config"
)

// Roles carried in the token. Every account is exactly one of these.
const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
)

// Claims represents the JWT claims carried by a bearer token.
// Subject holds the customer or employee ID.
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed, expiring bearer token for the given
// account. Tokens are stateless; logout is client-side discard only.
func GenerateToken(cfg *config.Config, id uint, role, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:  role,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(id), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.TokenTTLHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// RequireAuth validates the Authorization header and stores the caller's
// identity (user_id, role) in the Gin context. Requests with a missing,
// malformed, invalid or expired token are rejected with 401.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "MISSING_TOKEN", "Missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "INVALID_AUTH_HEADER", "Invalid Authorization header format")
			return
		}

		claims, err := validateToken(cfg, parts[1])
		if err != nil {
			abortUnauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		id, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil {
			abortUnauthorized(c, "INVALID_TOKEN", "Invalid token subject")
			return
		}

		c.Set("user_id", uint(id))
		c.Set("role", claims.Role)
		c.Next()
	}
}

// validateToken parses a token string and returns its claims
func validateToken(cfg *config.Config, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &AuthError{Code: "INVALID_SIGNING_METHOD", Message: "Unexpected token signing method"}
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, &AuthError{Code: "INVALID_TOKEN", Message: "Token claims are not in the expected format"}
	}

	return claims, nil
}

// RequireRole rejects authenticated callers whose token carries a
// different role tag. Must run after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actual, err := GetRole(c)
		if err != nil || actual != role {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Access restricted to " + role + " accounts",
				"code":    http.StatusForbidden,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID extracts the authenticated account ID from the Gin context
func GetUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, &AuthError{Code: "MISSING_USER_ID", Message: "User ID not found in context"}
	}

	id, ok := userID.(uint)
	if !ok {
		return 0, &AuthError{Code: "INVALID_USER_ID", Message: "User ID is not a uint"}
	}

	return id, nil
}

// GetRole extracts the authenticated role from the Gin context
func GetRole(c *gin.Context) (string, error) {
	role, exists := c.Get("role")
	if !exists {
		return "", &AuthError{Code: "MISSING_ROLE", Message: "Role not found in context"}
	}

	roleStr, ok := role.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_ROLE", Message: "Role is not a string"}
	}

	return roleStr, nil
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
		"code":    http.StatusUnauthorized,
		"error":   gin.H{"code": code},
	})
	c.Abort()
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
