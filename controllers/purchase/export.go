package purchaseControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/purchases/export-excel
func ExportPurchasesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var purchases []models.Purchase
		if err := db.Preload("Details").Order("created_at DESC, id DESC").Find(&purchases).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchases"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Purchases")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "UserID", "Method", "Status", "Total", "ProductIDs", "Products", "CreatedAt"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range purchases {
			ids := make([]string, len(p.Details))
			names := make([]string, len(p.Details))
			for i, d := range p.Details {
				ids[i] = strconv.FormatUint(uint64(d.ProductID), 10)
				names[i] = d.Name
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.UserID)
			row.AddCell().SetValue(string(p.Method))
			row.AddCell().SetValue(string(p.Status))
			row.AddCell().SetValue(p.Total.StringFixed(2))
			row.AddCell().SetValue(strings.Join(ids, ","))
			row.AddCell().SetValue(strings.Join(names, ", "))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=purchases.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
