package controllers

import (
	"net/http"

	"comanda-api/config"
	"comanda-api/models"
	"comanda-api/services"

	"github.com/gin-gonic/gin"
)

// Sales dashboard: summary KPIs, daily series, payment-method breakdown
// and hourly totals over all paid orders.
func GetDashboard(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Payments").
		Where("status = ?", models.StatusPagada).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.BuildDashboard(orders))
}
