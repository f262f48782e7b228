package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// POST /admin/products/import-excel
//
// Rows with an ID that matches an existing product update it; every other
// valid row creates a product. Invalid rows are skipped and counted.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			if row == nil || len(row.Cells) < len(productColumns) {
				skippedCount++
				continue
			}
			get := func(index int) string {
				return strings.TrimSpace(row.Cells[index].String())
			}

			product, ok := parseProductRow(get)
			if !ok {
				skippedCount++
				continue
			}

			if id, err := strconv.ParseUint(get(0), 10, 64); err == nil && id > 0 {
				var existing models.Product
				if err := db.First(&existing, id).Error; err == nil {
					product.ID = existing.ID
					product.CreatedAt = existing.CreatedAt
					if validateProduct(db, &product) != nil || db.Save(&product).Error != nil {
						skippedCount++
						continue
					}
					updatedCount++
					continue
				}
			}

			if validateProduct(db, &product) != nil || db.Create(&product).Error != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}

func parseProductRow(get func(int) string) (models.Product, bool) {
	price, err := decimal.NewFromString(get(5))
	if err != nil {
		return models.Product{}, false
	}
	rating := decimal.Zero
	if v := get(7); v != "" {
		if rating, err = decimal.NewFromString(v); err != nil {
			return models.Product{}, false
		}
	}
	available := true
	if v := get(8); v != "" {
		if available, err = parseBool(v); err != nil {
			return models.Product{}, false
		}
	}
	supplierID, err := strconv.ParseUint(get(9), 10, 64)
	if err != nil {
		return models.Product{}, false
	}

	return models.Product{
		Name:        get(1),
		Category:    models.ProductCategory(get(2)),
		Genre:       get(3),
		Description: get(4),
		Price:       price,
		ReleaseDate: get(6),
		Rating:      rating,
		Available:   available,
		SupplierID:  uint(supplierID),
	}, true
}

// parseBool also accepts the 1/0 that spreadsheet booleans are stored as.
func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return strconv.ParseBool(v)
}
