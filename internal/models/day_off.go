package models

import "time"

// DayOff marks a franco: the employee does not work that calendar day.
// A day off always wins over a shift on the same (employee, date).
type DayOff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EmployeeID string `gorm:"size:36;not null;uniqueIndex:idx_days_off_employee_date" json:"employee_id"`
	Date       string `gorm:"size:10;not null;uniqueIndex:idx_days_off_employee_date" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}
