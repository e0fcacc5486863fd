package controllers

import (
	"net/http"
	"strconv"
	"time"

	"comanda-api/config"
	"comanda-api/dtos"
	"comanda-api/models"
	"comanda-api/services"
	"comanda-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// loadWeekLogs fetches the logs whose start falls inside the week of
// the reference date, optionally restricted to one employee. The stored
// wall-clock strings sort lexicographically, so the range filter is a
// plain string comparison.
func loadWeekLogs(weekStart time.Time, employeeID string) ([]models.WorkLog, error) {
	from := weekStart.Format(utils.LocalLayout)
	to := utils.EndOfWeek(weekStart).Format(utils.LocalLayout)

	q := config.DB.Where("start_at >= ? AND start_at <= ?", from, to)
	if employeeID != "" && employeeID != "all" {
		q = q.Where("employee_id = ?", employeeID)
	}

	var logs []models.WorkLog
	err := q.Order("start_at DESC").Find(&logs).Error
	return logs, err
}

// Weekly work-hour table. GET /worklogs/week?date=2024-03-05&employee_id=3
func GetWeekReport(c *gin.Context) {
	ref := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'date'"})
			return
		}
		ref = parsed
	}
	weekStart := utils.StartOfWeek(ref)

	employeeID := c.Query("employee_id")
	logs, err := loadWeekLogs(weekStart, employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var employees []models.Employee
	q := config.DB.Order("name ASC")
	if employeeID != "" && employeeID != "all" {
		q = q.Where("id = ?", employeeID)
	}
	if err := q.Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.BuildWeekReport(logs, employees, weekStart))
}

// Resolve a clicked employee/day cell: edit the latest log of that day
// if one exists, otherwise a blank creation prefill for that date.
// GET /worklogs/cell?employee_id=3&date=2024-03-05
func ResolveWorkLogCell(c *gin.Context) {
	empID, err := strconv.ParseUint(c.Query("employee_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'employee_id'"})
		return
	}
	date := c.Query("date")
	if date == "" {
		date = utils.TodayKey()
	}

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'date'"})
		return
	}

	logs, err := loadWeekLogs(utils.StartOfWeek(day), strconv.FormatUint(empID, 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if existing, ok := services.ResolveCell(logs, uint(empID), date); ok {
		start, _ := utils.ParseLocal(existing.StartAt)
		end, _ := utils.ParseLocal(existing.EndAt)
		c.JSON(http.StatusOK, dtos.CellResolution{
			Mode:       "edit",
			LogID:      &existing.ID,
			EmployeeID: uint(empID),
			Date:       date,
			Start:      start.Format("15:04"),
			End:        end.Format("15:04"),
		})
		return
	}

	c.JSON(http.StatusOK, dtos.CellResolution{
		Mode:       "create",
		EmployeeID: uint(empID),
		Date:       date,
	})
}

// validateWorkLogInput applies the shared form rules: existing
// employee, date key, HH:MM times, end strictly after start within the
// same day. Overnight shifts are rejected by that last rule.
func validateWorkLogInput(input dtos.WorkLogInput) string {
	if _, err := time.ParseInLocation("2006-01-02", input.Date, time.Local); err != nil {
		return "Invalid date, expected YYYY-MM-DD"
	}
	if !utils.IsValidTime(input.Start) || !utils.IsValidTime(input.End) {
		return "Invalid time, expected HH:MM"
	}
	if utils.MinutesOfDay(input.End) <= utils.MinutesOfDay(input.Start) {
		return "End time must be greater than start time"
	}
	return ""
}

func CreateWorkLog(c *gin.Context) {
	var input dtos.WorkLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateWorkLogInput(input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, input.EmployeeID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Employee not found"})
		return
	}

	log := models.WorkLog{
		EmployeeID: input.EmployeeID,
		StartAt:    utils.BuildLocalDateTime(input.Date, input.Start),
		EndAt:      utils.BuildLocalDateTime(input.Date, input.End),
	}
	if err := config.DB.Create(&log).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logrus.Infof("[CreateWorkLog] log %d saved for employee %d", log.ID, log.EmployeeID)
	c.JSON(http.StatusCreated, log)
}

func UpdateWorkLog(c *gin.Context) {
	id := c.Param("id")
	var log models.WorkLog
	if err := config.DB.First(&log, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Work log not found"})
		return
	}

	var input dtos.WorkLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateWorkLogInput(input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	log.EmployeeID = input.EmployeeID
	log.StartAt = utils.BuildLocalDateTime(input.Date, input.Start)
	log.EndAt = utils.BuildLocalDateTime(input.Date, input.End)

	if err := config.DB.Save(&log).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, log)
}

func DeleteWorkLog(c *gin.Context) {
	id := c.Param("id")
	var log models.WorkLog
	if err := config.DB.First(&log, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Work log not found"})
		return
	}

	if err := config.DB.Delete(&log).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Work log deleted"})
}
