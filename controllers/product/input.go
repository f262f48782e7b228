package productcontroller

import (
	"errors"
	"strings"
	"time"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var maxRating = decimal.NewFromInt(5)

// ProductInput is the body of create and update requests. Nil fields are
// left untouched on update.
type ProductInput struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Genre       *string          `json:"genre"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ReleaseDate *string          `json:"release_date"`
	Rating      *decimal.Decimal `json:"rating"`
	Available   *bool            `json:"available"`
	SupplierID  *uint            `json:"supplier_id"`
}

// apply copies the set fields onto p and checks the result.
func (in ProductInput) apply(db *gorm.DB, p *models.Product) error {
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		p.Category = models.ProductCategory(*in.Category)
	}
	if in.Genre != nil {
		p.Genre = *in.Genre
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.ReleaseDate != nil {
		p.ReleaseDate = *in.ReleaseDate
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	if in.Available != nil {
		p.Available = *in.Available
	}
	if in.SupplierID != nil {
		p.SupplierID = *in.SupplierID
	}
	return validateProduct(db, p)
}

func validateProduct(db *gorm.DB, p *models.Product) error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if !p.Category.Valid() {
		return errors.New("category must be Game, DLC or Membership")
	}
	if p.Price.IsNegative() || !p.Price.Round(2).Equal(p.Price) {
		return errors.New("price must be a non-negative amount with at most two decimals")
	}
	if p.Rating.IsNegative() || p.Rating.GreaterThan(maxRating) {
		return errors.New("rating must be between 0 and 5")
	}
	if p.ReleaseDate != "" {
		if _, err := time.Parse("2006-01-02", p.ReleaseDate); err != nil {
			return errors.New("release_date must be YYYY-MM-DD")
		}
	}
	var n int64
	if err := db.Model(&models.Supplier{}).Where("id = ?", p.SupplierID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return errors.New("supplier does not exist")
	}
	return nil
}
