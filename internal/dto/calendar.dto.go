package dto

type ShiftDTO struct {
	ID        uint   `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Notes     string `json:"notes"`
}

type DayOffDTO struct {
	Date string `json:"date"`
}

type CalendarDTO struct {
	Shifts  []ShiftDTO  `json:"shifts"`
	DaysOff []DayOffDTO `json:"daysOff"`
}
