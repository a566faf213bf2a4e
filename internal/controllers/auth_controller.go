package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"reliefassist/internal/config"
	"reliefassist/internal/middleware"
	"reliefassist/internal/models"
)

type registerInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Skills    string `json:"skills"`
}

// Register creates a user account plus the matching volunteer or donor
// profile row. The duplicate-email check, the user insert and the profile
// insert run in one transaction; a unique index on email backstops the check
// under concurrent registration.
func Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role == "" {
		role = models.RoleVolunteer
	}
	// Admin accounts are never self-granted; an existing admin promotes users.
	if !models.SelfRegisterRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	var existing models.User
	err = tx.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		tx.Rollback()
		c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	user := models.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user: " + err.Error()})
		return
	}

	if err := createProfileRecord(tx, &user, input); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create profile record: " + err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": prepareUserResponse(user)})
}

// Login verifies credentials and establishes a session.
func Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same answer as a bad password; don't leak which emails exist.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := middleware.NewSession(config.DB, &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  prepareUserResponse(user),
	})
}

// Logout destroys the current session; the token stops working immediately.
func Logout(c *gin.Context) {
	sidIfc, exists := c.Get("sid")
	sid, ok := sidIfc.(string)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}

	if err := middleware.EndSession(config.DB, sid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not end session: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// isUniqueViolation reports whether err is a Postgres unique-index violation
// (SQLSTATE 23505). The gorm postgres driver runs on pgx, so the error
// surfaces as *pgconn.PgError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// createProfileRecord creates the roster row matching the account's role so
// the volunteer and donor portals can resolve the principal's profile.
func createProfileRecord(tx *gorm.DB, user *models.User, input registerInput) error {
	switch user.Role {
	case models.RoleVolunteer:
		volunteer := models.Volunteer{
			UserID:    &user.ID,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Phone:     input.Phone,
			Skills:    input.Skills,
		}
		if err := tx.Create(&volunteer).Error; err != nil {
			return err
		}
		user.Volunteer = &volunteer
	case models.RoleDonor:
		donor := models.Donor{
			UserID:    &user.ID,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Phone:     input.Phone,
		}
		if err := tx.Create(&donor).Error; err != nil {
			return err
		}
		user.Donor = &donor
	}
	return nil
}

func prepareUserResponse(user models.User) gin.H {
	responseUser := gin.H{
		"ID":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	}
	if user.Volunteer != nil {
		responseUser["volunteer_id"] = user.Volunteer.ID
	}
	if user.Donor != nil {
		responseUser["donor_id"] = user.Donor.ID
	}
	return responseUser
}
