package userControllers

import (
	"net/http"
	"strings"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/auth"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at desc")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		users := []models.User{}
		if err := query.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /admin/users/:id
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.
			Preload("Cart", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
			Preload("Library", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
			First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /admin/users
func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input auth.RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := auth.ValidatePassword(input.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Username:     strings.TrimSpace(input.Username),
			Email:        strings.ToLower(strings.TrimSpace(input.Email)),
			PasswordHash: string(hash),
			Country:      input.Country,
			BirthDate:    input.BirthDate,
			Status:       models.UserActive,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already in use"})
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

type StatusInput struct {
	Status models.UserStatus `json:"status" binding:"required"`
}

// PUT /admin/users/:id/status
func UpdateUserStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input StatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Status != models.UserActive && input.Status != models.UserInactive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be Active or Inactive"})
			return
		}

		res := db.Model(&models.User{}).Where("id = ?", c.Param("id")).Update("status", input.Status)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User status updated"})
	}
}

// PUT /admin/users/:id
func UpdateUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		updateProfile(c, db, c.Param("id"))
	}
}

// DELETE /admin/users/:id
func DeleteUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		removeAccount(c, db, c.Param("id"))
	}
}
