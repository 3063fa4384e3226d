package perfumecontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/perphorum/perphorum-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportPerfumesToExcel streams the catalog as an .xlsx attachment.
// GET /admin/perfumes/export
func ExportPerfumesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var perfumes []models.Perfume
		if err := db.
			Preload("Ingredients", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("position ASC")
			}).
			Find(&perfumes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch perfumes"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Perfumes")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Brand", "Name", "Family", "Subfamily",
			"Gender", "Description", "Ingredients", "ImageName",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for i := range perfumes {
			p := &perfumes[i]
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Family)
			row.AddCell().SetValue(p.Subfamily)
			row.AddCell().SetValue(p.Gender)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(strings.Join(p.IngredientNames(), ","))
			row.AddCell().SetValue(p.ImageName)
		}

		c.Header("Content-Disposition", "attachment; filename=perfumes.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
