package services

import (
	"fmt"
	"sort"
	"time"

	"comanda-api/models"
	"comanda-api/utils"
)

// DayCell is one employee/day aggregate.
type DayCell struct {
	Minutes int    `json:"minutes"`
	Label   string `json:"label"`
}

type EmployeeWeek struct {
	EmployeeID   uint               `json:"employee_id"`
	Name         string             `json:"name"`
	Days         map[string]DayCell `json:"days"`
	TotalMinutes int                `json:"total_minutes"`
	TotalLabel   string             `json:"total_label"`
}

type WeekReport struct {
	WeekStart   string             `json:"week_start"`
	WeekEnd     string             `json:"week_end"`
	DayKeys     []string           `json:"day_keys"`
	TodayKey    string             `json:"today_key"`
	Rows        []EmployeeWeek     `json:"rows"`
	TotalsByDay map[string]DayCell `json:"totals_by_day"`
	WeekMinutes int                `json:"week_minutes"`
	WeekLabel   string             `json:"week_label"`
}

// logWhen picks the timestamp a log is bucketed and ranked by: endAt
// when present, else startAt.
func logWhen(l models.WorkLog) string {
	if l.EndAt != "" {
		return l.EndAt
	}
	return l.StartAt
}

func logDateKey(l models.WorkLog) (string, bool) {
	when := l.StartAt
	if when == "" {
		when = l.EndAt
	}
	t, err := utils.ParseLocal(when)
	if err != nil {
		return "", false
	}
	return utils.DateKey(t), true
}

// cellKey joins employee and local day into the index key the client
// uses to resolve a clicked cell.
func cellKey(employeeID uint, dateKey string) string {
	return fmt.Sprintf("%d|%s", employeeID, dateKey)
}

// LastLogIndex maps employeeId|dateKey to the employee's latest log of
// that day. With duplicate entries the one with the later endAt (or
// startAt when endAt is missing) wins, so an edit always targets the
// record the user most recently saved.
func LastLogIndex(logs []models.WorkLog) map[string]models.WorkLog {
	idx := make(map[string]models.WorkLog)
	ts := make(map[string]time.Time)
	for _, l := range logs {
		key, ok := logDateKey(l)
		if !ok {
			continue
		}
		k := cellKey(l.EmployeeID, key)
		when, err := utils.ParseLocal(logWhen(l))
		if err != nil {
			continue
		}
		if prev, seen := ts[k]; !seen || when.After(prev) {
			idx[k] = l
			ts[k] = when
		}
	}
	return idx
}

// BuildWeekReport aggregates raw logs into the weekly table: one row per
// employee, seven day columns, day totals across employees and the week
// total. Summation happens in integer minutes only; the hour labels are
// derived at the end.
func BuildWeekReport(logs []models.WorkLog, employees []models.Employee, weekStart time.Time) WeekReport {
	weekStart = utils.StartOfWeek(weekStart)
	dayKeys := utils.WeekDateKeys(weekStart)
	inWeek := make(map[string]bool, len(dayKeys))
	for _, k := range dayKeys {
		inWeek[k] = true
	}

	minutesByEmpDay := make(map[uint]map[string]int)
	totalsByDay := make(map[string]int, len(dayKeys))
	for _, l := range logs {
		key, ok := logDateKey(l)
		if !ok || !inWeek[key] {
			continue
		}
		mins := utils.DurationMinutes(l.StartAt, l.EndAt)
		if minutesByEmpDay[l.EmployeeID] == nil {
			minutesByEmpDay[l.EmployeeID] = make(map[string]int)
		}
		minutesByEmpDay[l.EmployeeID][key] += mins
		totalsByDay[key] += mins
	}

	sorted := make([]models.Employee, len(employees))
	copy(sorted, employees)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	rows := make([]EmployeeWeek, 0, len(sorted))
	for _, emp := range sorted {
		row := EmployeeWeek{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Days:       make(map[string]DayCell, len(dayKeys)),
		}
		for _, k := range dayKeys {
			mins := minutesByEmpDay[emp.ID][k]
			row.Days[k] = DayCell{Minutes: mins, Label: utils.FormatMinutes(mins)}
			row.TotalMinutes += mins
		}
		row.TotalLabel = utils.FormatMinutes(row.TotalMinutes)
		rows = append(rows, row)
	}

	report := WeekReport{
		WeekStart:   utils.DateKey(weekStart),
		WeekEnd:     utils.DateKey(utils.EndOfWeek(weekStart)),
		DayKeys:     dayKeys,
		TodayKey:    utils.TodayKey(),
		Rows:        rows,
		TotalsByDay: make(map[string]DayCell, len(dayKeys)),
	}
	for _, k := range dayKeys {
		mins := totalsByDay[k]
		report.TotalsByDay[k] = DayCell{Minutes: mins, Label: utils.FormatMinutes(mins)}
		report.WeekMinutes += mins
	}
	report.WeekLabel = utils.FormatMinutes(report.WeekMinutes)
	return report
}

// ResolveCell finds the log a clicked employee/day cell should edit, if
// any.
func ResolveCell(logs []models.WorkLog, employeeID uint, dateKey string) (models.WorkLog, bool) {
	idx := LastLogIndex(logs)
	l, ok := idx[cellKey(employeeID, dateKey)]
	return l, ok
}

// WorkLogPager is the slice of storage the cascade delete needs: read a
// page of one employee's logs ordered by start, and remove a batch.
type WorkLogPager interface {
	PageForEmployee(employeeID uint, limit int) ([]models.WorkLog, error)
	DeleteByIDs(ids []uint) error
}

// CascadeDeleteWorkLogs removes every work log of an employee in pages
// of pageSize. Each iteration re-reads from the start of the remaining
// records, so a failure part way through leaves a state that a repeat
// invocation finishes cleaning up. Returns how many logs were deleted
// before success or the first error.
func CascadeDeleteWorkLogs(pager WorkLogPager, employeeID uint, pageSize int) (int, error) {
	deleted := 0
	for {
		page, err := pager.PageForEmployee(employeeID, pageSize)
		if err != nil {
			return deleted, err
		}
		if len(page) == 0 {
			return deleted, nil
		}

		ids := make([]uint, len(page))
		for i, l := range page {
			ids[i] = l.ID
		}
		if err := pager.DeleteByIDs(ids); err != nil {
			return deleted, err
		}
		deleted += len(page)
	}
}
