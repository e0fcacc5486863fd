package controllers

import (
	"net/http"
	"strconv"

	"comanda-api/config"
	"comanda-api/dtos"
	"comanda-api/models"
	"comanda-api/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Pages well under typical per-batch write limits.
const cascadePageSize = 450

func GetEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := config.DB.Order("name ASC").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, employees)
}

func CreateEmployee(c *gin.Context) {
	var input dtos.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee := models.Employee{Name: input.Name, Phone: input.Phone}
	if err := config.DB.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func UpdateEmployee(c *gin.Context) {
	id := c.Param("id")
	var employee models.Employee
	if err := config.DB.First(&employee, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	var input dtos.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee.Name = input.Name
	employee.Phone = input.Phone
	if err := config.DB.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, employee)
}

type gormWorkLogPager struct {
	db *gorm.DB
}

func (p gormWorkLogPager) PageForEmployee(employeeID uint, limit int) ([]models.WorkLog, error) {
	var page []models.WorkLog
	err := p.db.Where("employee_id = ?", employeeID).
		Order("start_at ASC").Limit(limit).Find(&page).Error
	return page, err
}

func (p gormWorkLogPager) DeleteByIDs(ids []uint) error {
	return p.db.Delete(&models.WorkLog{}, ids).Error
}

// Delete employee and cascade over its work logs in pages ordered by
// start_at. The cascade is best-effort: a mid-way failure leaves the
// remaining logs in place and is resumed by deleting again. The cascade
// runs even when the employee row is already gone, so a retry after a
// partial failure can finish cleaning up orphaned logs; 404 only when
// neither the employee nor any of its logs exist.
func DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	empID, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	found := true
	var employee models.Employee
	if err := config.DB.First(&employee, empID).Error; err != nil {
		found = false
	} else if err := config.DB.Delete(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}

	deleted, err := services.CascadeDeleteWorkLogs(gormWorkLogPager{db: config.DB}, uint(empID), cascadePageSize)
	if err != nil {
		logrus.Errorf("[DeleteEmployee] cascade failed after %d logs: %v", deleted, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !found && deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	logrus.Infof("[DeleteEmployee] employee %s deleted with %d work logs", id, deleted)
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted", "worklogs_deleted": deleted})
}
