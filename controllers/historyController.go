package controllers

import (
	"net/http"

	"comanda-api/config"
	"comanda-api/models"
	"comanda-api/services"

	"github.com/gin-gonic/gin"
)

// Sales history: paid orders grouped by the local day they were paid.
// GET /orders/history
func GetSalesHistory(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Items").Preload("Payments").
		Where("status = ?", models.StatusPagada).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.GroupPaidByDay(orders))
}
