package models

type Employee struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Phone string `json:"phone"`
}

// WorkLog persists only the four essential fields. Minutes and date keys
// are derived at read time so stored and computed durations cannot drift.
// StartAt and EndAt hold local wall-clock strings ("2006-01-02T15:04:05",
// no offset) so the entered times redisplay unchanged in any timezone.
type WorkLog struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	EmployeeID uint   `gorm:"index;not null" json:"employee_id"`
	StartAt    string `gorm:"index;not null" json:"start_at"`
	EndAt      string `gorm:"not null" json:"end_at"`
}
