package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrWeakPassword = errors.New("password must be at least 8 letters or digits and contain both")

type RegisterInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Country   string `json:"country"`
	BirthDate string `json:"birth_date"`
}

// ValidatePassword accepts ASCII letters and digits only, at least eight of
// them, with at least one of each.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var letter, digit bool
	for _, r := range password {
		switch {
		case r > unicode.MaxASCII:
			return ErrWeakPassword
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		default:
			return ErrWeakPassword
		}
	}
	if !letter || !digit {
		return ErrWeakPassword
	}
	return nil
}

// POST /auth/register
func Register(db *gorm.DB, tokens Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		input.Username = strings.TrimSpace(input.Username)
		input.Email = strings.ToLower(strings.TrimSpace(input.Email))

		if err := ValidatePassword(input.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.BirthDate != "" {
			if _, err := time.Parse("2006-01-02", input.BirthDate); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be YYYY-MM-DD"})
				return
			}
		}

		var taken int64
		if err := db.Model(&models.User{}).
			Where("username = ? OR email = ?", input.Username, input.Email).
			Count(&taken).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if taken > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already in use"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: string(hash),
			Country:      input.Country,
			BirthDate:    input.BirthDate,
			Status:       models.UserActive,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		token, expiresAt, err := tokens.Issue(user.ID, RoleUser)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":    "Registration successful",
			"user":       user,
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}
