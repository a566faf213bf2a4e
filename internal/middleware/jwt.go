package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"reliefassist/internal/config"
	"reliefassist/internal/models"
)

var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

const sessionTTL = 72 * time.Hour

// NewSession persists a session row for the user and returns a signed token
// referencing it. The token dies with the row: logout deletes the row and the
// token stops resolving even though its expiry claim is still valid.
func NewSession(db *gorm.DB, user *models.User) (string, error) {
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := db.Create(&session).Error; err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"sid":     session.Token,
		"exp":     session.ExpiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// EndSession invalidates the session identified by sid immediately.
func EndSession(db *gorm.DB, sid string) error {
	return db.Where("token = ?", sid).Delete(&models.Session{}).Error
}

// RequireAuth ensures a valid JWT backed by a live session is present, then
// attaches the principal (id, email, role) to the request context. The user
// row is re-read on every request so role changes take effect without
// re-login.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}
		c.Next()
	}
}

// authenticate validates the token, resolves the session and loads the
// principal into the context. It aborts with the right status and reports
// false on failure. It never advances the handler chain itself; the calling
// middleware decides when every check has passed and c.Next() may run.
func authenticate(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return false
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return false
	}

	var session models.Session
	err = config.DB.Where("token = ?", sid).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or logged out"})
		} else {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return false
	}
	if time.Now().After(session.ExpiresAt) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or logged out"})
		return false
	}

	var user models.User
	if err := config.DB.First(&user, session.UserID).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or logged out"})
		return false
	}

	// Store the principal in context for downstream handlers
	c.Set("user_id", user.ID)
	c.Set("email", user.Email)
	c.Set("role", user.Role)
	c.Set("sid", sid)

	return true
}

// RequireRoles ensures the JWT is valid and the principal's role is in the
// allow-list. Admin passes every gate. The handler chain only advances once
// both the authentication and the role check have passed.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}

		roleIfc, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not found in session"})
			return
		}
		role, ok := roleIfc.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not found in session"})
			return
		}

		if role == models.RoleAdmin {
			c.Next()
			return
		}
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

// PrincipalID returns the authenticated user's id from the request context.
func PrincipalID(c *gin.Context) (uint, bool) {
	idIfc, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := idIfc.(uint)
	return id, ok
}
