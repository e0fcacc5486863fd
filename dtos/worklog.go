package dtos

type WorkLogInput struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Start      string `json:"start" binding:"required"`
	End        string `json:"end" binding:"required"`
}

type EmployeeInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// CellResolution tells the client whether a clicked employee/day cell
// edits an existing log or creates a new one.
type CellResolution struct {
	Mode       string `json:"mode"` // "edit" or "create"
	LogID      *uint  `json:"log_id,omitempty"`
	EmployeeID uint   `json:"employee_id"`
	Date       string `json:"date"`
	Start      string `json:"start"`
	End        string `json:"end"`
}
