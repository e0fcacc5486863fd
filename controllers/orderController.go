package controllers

import (
	"errors"
	"net/http"
	"time"

	"comanda-api/config"
	"comanda-api/dtos"
	"comanda-api/models"
	"comanda-api/services"
	"comanda-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Create new order (kitchen queue entry, always "Por Hacer")
func CreateOrder(c *gin.Context) {
	var input dtos.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, models.OrderItem{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Notes:    it.Notes,
		})
	}

	now := time.Now()
	order := models.Order{
		CustomerName: input.CustomerName,
		Status:       models.StatusPorHacer,
		Total:        models.ComputeTotal(items),
		Items:        items,
		Timestamp:    now,
		CreatedAt:    now,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Preload("Items").First(&order, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logrus.Infof("[CreateOrder] order %d saved, total %s", order.ID, utils.FormatCurrency(order.Total))
	c.JSON(http.StatusCreated, order)
}

// Get orders in a timestamp range; defaults to today's kitchen queue.
// GET /orders?from=2024-01-01&to=2024-01-02
func GetOrders(c *gin.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.Add(24*time.Hour - time.Millisecond)

	if v := c.Query("from"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date"})
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date"})
			return
		}
		to = parsed.Add(24*time.Hour - time.Millisecond)
	}

	var orders []models.Order
	if err := config.DB.Preload("Items").Preload("Payments").
		Where("timestamp BETWEEN ? AND ?", from, to).
		Order("timestamp DESC").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Get order by ID
func GetOrderByID(c *gin.Context) {
	id := c.Param("id")
	var order models.Order
	if err := config.DB.Preload("Items").Preload("Payments").First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// Update order status. Backward moves need confirm:true; paying is only
// possible through the payment endpoint.
func UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	var order models.Order
	if err := config.DB.Preload("Items").First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var input dtos.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if order.Status == models.StatusPagada {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paid orders cannot be modified"})
		return
	}
	if input.Status == models.StatusPagada {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Use the payment endpoint to mark an order as paid"})
		return
	}
	if services.IsBackward(order.Status, input.Status) && !input.Confirm {
		c.JSON(http.StatusConflict, gin.H{"error": "Backward transition requires confirmation"})
		return
	}

	order.Status = input.Status
	order.CreatedAt = time.Now()

	if err := config.DB.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logrus.Infof("[UpdateOrderStatus] order %s moved to %q", id, input.Status)
	c.JSON(http.StatusOK, order)
}

// Pay order: reconcile payment rows, record change due, mark Pagada.
func PayOrder(c *gin.Context) {
	id := c.Param("id")

	var input dtos.PayOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.Status == models.StatusPagada {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order is already paid"})
		return
	}
	if order.Total <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order has no payable amount"})
		return
	}

	payments, changeDue, err := services.ReconcilePayments(order.Total, input.Payments)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientPayment) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "Payment not enough",
				"change_due": changeDue,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for i := range payments {
		payments[i].OrderID = order.ID
	}

	tx := config.DB.Begin()
	order.Status = models.StatusPagada
	order.CreatedAt = time.Now()
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := tx.Create(&payments).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Preload("Items").Preload("Payments").First(&order, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logrus.Infof("[PayOrder] order %s paid, change due %s", id, utils.FormatCurrency(changeDue))
	c.JSON(http.StatusOK, gin.H{
		"order":      order,
		"change_due": changeDue,
	})
}

// DELETE /orders/:id, hard delete for any status.
func DeleteOrder(c *gin.Context) {
	id := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	tx := config.DB.Begin()
	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}
	if err := tx.Where("order_id = ?", order.ID).Delete(&models.Payment{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}
	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logrus.Infof("[DeleteOrder] order %s deleted", id)
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
