package productcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/common"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SupplierInput struct {
	Name        *string `json:"name"`
	Kind        *string `json:"kind"`
	Country     *string `json:"country"`
	Website     *string `json:"website"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

func (in SupplierInput) apply(s *models.Supplier) error {
	if in.Name != nil {
		s.Name = strings.TrimSpace(*in.Name)
	}
	if in.Kind != nil {
		s.Kind = models.SupplierKind(*in.Kind)
	}
	if in.Country != nil {
		s.Country = *in.Country
	}
	if in.Website != nil {
		s.Website = *in.Website
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.Active != nil {
		s.Active = *in.Active
	}

	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Kind != models.SupplierDeveloper && s.Kind != models.SupplierPublisher {
		return errors.New("kind must be Developer or Publisher")
	}
	return nil
}

// POST /admin/suppliers
func CreateSupplier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SupplierInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		supplier := models.Supplier{Active: true}
		if err := input.apply(&supplier); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Create(&supplier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier"})
			return
		}
		c.JSON(http.StatusCreated, supplier)
	}
}

// GET /admin/suppliers
func GetAllSuppliers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		suppliers := []models.Supplier{}
		if err := db.Order("name").Find(&suppliers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suppliers"})
			return
		}
		c.JSON(http.StatusOK, suppliers)
	}
}

// GET /admin/suppliers/:id
func GetSupplierByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := common.ParseID(c, "id")
		if !ok {
			return
		}

		var supplier models.Supplier
		if err := db.Preload("Products").First(&supplier, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		c.JSON(http.StatusOK, supplier)
	}
}

// GET /store/suppliers/:id
func GetStoreSupplier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := common.ParseID(c, "id")
		if !ok {
			return
		}

		var supplier models.Supplier
		err := db.
			Preload("Products", "available = ?", true).
			Where("active = ?", true).
			First(&supplier, id).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		c.JSON(http.StatusOK, supplier)
	}
}

// PUT /admin/suppliers/:id
func UpdateSupplier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := common.ParseID(c, "id")
		if !ok {
			return
		}

		var supplier models.Supplier
		if err := db.First(&supplier, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}

		var input SupplierInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := input.apply(&supplier); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := db.Save(&supplier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
			return
		}
		c.JSON(http.StatusOK, supplier)
	}
}

// DELETE /admin/suppliers/:id
//
// Suppliers that still have catalog products are refused.
func DeleteSupplier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := common.ParseID(c, "id")
		if !ok {
			return
		}

		var supplier models.Supplier
		if err := db.First(&supplier, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch supplier"})
			return
		}

		var products int64
		if err := db.Model(&models.Product{}).Where("supplier_id = ?", id).Count(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}
		if products > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Supplier still has products"})
			return
		}

		if err := db.Delete(&supplier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supplier"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
	}
}
