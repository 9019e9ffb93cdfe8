package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/south-indian-kitchen/backend/models"
	"github.com/south-indian-kitchen/backend/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboard -> order counts per status plus revenue from completed
// orders, the numbers the admin landing page shows.
func (ac *AdminController) GetDashboard(c *gin.Context) {
	statusCounts := make(map[string]int64, len(models.OrderStatuses))
	for _, status := range models.OrderStatuses {
		var count int64
		if err := ac.DB.Model(&models.Order{}).Where("status = ?", status).Count(&count).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		statusCounts[status] = count
	}

	var totalOrders int64
	if err := ac.DB.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var revenue float64
	row := ac.DB.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Row()
	if err := row.Scan(&revenue); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard", gin.H{
		"total_orders":  totalOrders,
		"status_counts": statusCounts,
		"revenue":       revenue,
	})
}
