package models

import "time"

// Shift is one work assignment. Dates and times are stored as local
// "YYYY-MM-DD" / "HH:MM" strings, so lexicographic order is chronological
// order and range queries stay plain string comparisons.
type Shift struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EmployeeID string `gorm:"size:36;not null;uniqueIndex:idx_shifts_employee_date" json:"employee_id"`
	Date       string `gorm:"size:10;not null;uniqueIndex:idx_shifts_employee_date" json:"date"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
