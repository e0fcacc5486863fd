package controllers

import (
	"net/http"

	"comanda-api/dtos"
	"comanda-api/services"

	"github.com/gin-gonic/gin"
)

var authSvc = services.NewAuthService()

func Login(c *gin.Context) {
	var input dtos.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := authSvc.Login(input)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
