package userControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/common"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateUserInput struct {
	Username  *string `json:"username"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Country   *string `json:"country"`
	BirthDate *string `json:"birth_date"`
}

// GET /user/
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := common.UserID(c)
		if !ok {
			return
		}

		var user models.User
		if err := db.Preload("Library").First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user/
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := common.UserID(c)
		if !ok {
			return
		}
		updateProfile(c, db, userID)
	}
}

func updateProfile(c *gin.Context, db *gorm.DB, userID string) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if input.Username != nil {
		name := strings.TrimSpace(*input.Username)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username cannot be empty"})
			return
		}
		updates["username"] = name
	}
	if input.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Country != nil {
		updates["country"] = *input.Country
	}
	if input.BirthDate != nil {
		if *input.BirthDate != "" {
			if _, err := time.Parse("2006-01-02", *input.BirthDate); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be YYYY-MM-DD"})
				return
			}
		}
		updates["birth_date"] = *input.BirthDate
	}

	username, _ := updates["username"].(string)
	email, _ := updates["email"].(string)
	if username != "" || email != "" {
		var taken int64
		if err := db.Model(&models.User{}).
			Where("id <> ?", userID).
			Where("username = ? OR email = ?", username, email).
			Count(&taken).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if taken > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already in use"})
			return
		}
	}

	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload user"})
			return
		}
	}
	c.JSON(http.StatusOK, user)
}

// DELETE /user/
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := common.UserID(c)
		if !ok {
			return
		}
		removeAccount(c, db, userID)
	}
}

func removeAccount(c *gin.Context, db *gorm.DB, userID string) {
	if err := DeleteAccount(db, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// DeleteAccount removes the user together with their cart, library,
// purchases and pending payouts in one transaction.
func DeleteAccount(db *gorm.DB, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		purchaseIDs := tx.Model(&models.Purchase{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("purchase_id IN (?)", purchaseIDs).Delete(&models.PurchaseDetail{}).Error; err != nil {
			return err
		}
		for _, model := range []interface{}{
			&models.Purchase{},
			&models.CartItem{},
			&models.LibraryEntry{},
			&models.PendingPayout{},
		} {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&user).Error
	})
}
