package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lacantina/turnos-api/internal/dates"
	domain "github.com/lacantina/turnos-api/internal/domain/roster"
	"github.com/lacantina/turnos-api/internal/dto"
	"github.com/lacantina/turnos-api/internal/httperr"
	"github.com/lacantina/turnos-api/internal/httpresp"
	"github.com/lacantina/turnos-api/internal/middleware"
	"github.com/lacantina/turnos-api/internal/models"
)

type CalendarHandler struct {
	repo domain.Repository
}

func NewCalendarHandler(repo domain.Repository) *CalendarHandler {
	return &CalendarHandler{repo: repo}
}

// MyCalendar returns the caller's own shifts and francos in a range.
func (h *CalendarHandler) MyCalendar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	start := c.Query("start")
	end := c.Query("end")
	if !dates.IsYMD(start) || !dates.IsYMD(end) {
		httperr.BadRequest(c, "invalid_range", "start y end requeridos (YYYY-MM-DD).")
		return
	}

	shifts, err := h.repo.ListShiftsForEmployee(c.Request.Context(), userID, start, end)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	offs, err := h.repo.ListDaysOffForEmployees(c.Request.Context(), []string{userID}, start, end)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	out := dto.CalendarDTO{
		Shifts:  make([]dto.ShiftDTO, 0, len(shifts)),
		DaysOff: make([]dto.DayOffDTO, 0, len(offs)),
	}
	for _, s := range shifts {
		out.Shifts = append(out.Shifts, shiftDTO(s))
	}
	for _, o := range offs {
		out.DaysOff = append(out.DaysOff, dto.DayOffDTO{Date: o.Date})
	}

	httpresp.OK(c, out)
}

// EmployeeShifts returns one employee's ordered shifts in a range
// (admin view behind the month calendar).
func (h *CalendarHandler) EmployeeShifts(c *gin.Context) {
	employeeID := c.Query("employee_id")
	start := c.Query("start")
	end := c.Query("end")

	if employeeID == "" || !dates.IsYMD(start) || !dates.IsYMD(end) {
		httperr.BadRequest(c, "invalid_request", "employee_id, start y end requeridos.")
		return
	}

	shifts, err := h.repo.ListShiftsForEmployee(c.Request.Context(), employeeID, start, end)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	out := make([]dto.ShiftDTO, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, shiftDTO(s))
	}

	httpresp.OK(c, gin.H{"shifts": out})
}

func shiftDTO(s models.Shift) dto.ShiftDTO {
	return dto.ShiftDTO{
		ID:        s.ID,
		Date:      s.Date,
		StartTime: dates.HHMM(s.StartTime),
		EndTime:   dates.HHMM(s.EndTime),
		Notes:     s.Notes,
	}
}
