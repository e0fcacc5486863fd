package controllers

import (
	"net/http"

	"comanda-api/config"
	"comanda-api/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Products grouped into categories at read time. The synthetic "other"
// category for ad-hoc items is always present and never persisted.
func GetProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Order("name ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	byID := make(map[string]*models.Category)
	var order []string
	for _, p := range products {
		cat, ok := byID[p.CategoryID]
		if !ok {
			cat = &models.Category{ID: p.CategoryID, Name: p.CategoryName, Products: []models.Product{}}
			byID[p.CategoryID] = cat
			order = append(order, p.CategoryID)
		}
		cat.Products = append(cat.Products, p)
	}

	categories := make([]models.Category, 0, len(order)+1)
	for _, id := range order {
		categories = append(categories, *byID[id])
	}
	if _, ok := byID[models.CategoryOtherID]; !ok {
		categories = append(categories, models.Category{
			ID:       models.CategoryOtherID,
			Name:     models.CategoryOtherName,
			Products: []models.Product{},
		})
	}

	c.JSON(http.StatusOK, categories)
}

type productInput struct {
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price" binding:"min=0"`
	Description  *string `json:"description,omitempty"`
	CategoryID   string  `json:"category_id" binding:"required"`
	CategoryName string  `json:"category_name" binding:"required"`
}

func CreateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.CategoryID == models.CategoryOtherID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category 'other' holds no persisted products"})
		return
	}

	product := models.Product{
		Name:         input.Name,
		Price:        input.Price,
		Description:  input.Description,
		CategoryID:   input.CategoryID,
		CategoryName: input.CategoryName,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logrus.Infof("[CreateProduct] product %d created", product.ID)
	c.JSON(http.StatusCreated, product)
}

func UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.CategoryID == models.CategoryOtherID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category 'other' holds no persisted products"})
		return
	}

	product.Name = input.Name
	product.Price = input.Price
	product.Description = input.Description
	product.CategoryID = input.CategoryID
	product.CategoryName = input.CategoryName

	if err := config.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

func DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}

	logrus.Infof("[DeleteProduct] product %s deleted", id)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
