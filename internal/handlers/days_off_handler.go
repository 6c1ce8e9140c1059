package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lacantina/turnos-api/internal/audit"
	"github.com/lacantina/turnos-api/internal/httpresp"
	"github.com/lacantina/turnos-api/internal/middleware"
	ucSchedule "github.com/lacantina/turnos-api/internal/usecase/schedule"
)

type DaysOffHandler struct {
	toggle  *ucSchedule.ToggleDayOff
	replace *ucSchedule.ReplaceWeekDaysOff
	audit   *audit.Dispatcher
}

func NewDaysOffHandler(
	toggle *ucSchedule.ToggleDayOff,
	replace *ucSchedule.ReplaceWeekDaysOff,
	auditDispatcher *audit.Dispatcher,
) *DaysOffHandler {
	return &DaysOffHandler{
		toggle:  toggle,
		replace: replace,
		audit:   auditDispatcher,
	}
}

type ToggleDayOffRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	On         *bool  `json:"on" binding:"required"`
}

type ReplaceFrancosRequest struct {
	EmployeeID string   `json:"employee_id" binding:"required"`
	WeekStart  string   `json:"week_start" binding:"required"`
	WeekEnd    string   `json:"week_end" binding:"required"`
	Dates      []string `json:"dates"`
}

// Toggle sets or removes a single franco.
func (h *DaysOffHandler) Toggle(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	var req ToggleDayOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	err := h.toggle.Execute(c.Request.Context(), ucSchedule.ToggleDayOffInput{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		On:         *req.On,
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	action := "day_off_removed"
	if *req.On {
		action = "day_off_set"
	}
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   action,
		Entity:   "day_off",
		EntityID: req.EmployeeID + "|" + req.Date,
	})

	httpresp.OK(c, gin.H{"ok": true})
}

// ReplaceWeek swaps one employee's francos in a week for exactly the
// given dates.
func (h *DaysOffHandler) ReplaceWeek(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	var req ReplaceFrancosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	inserted, err := h.replace.Execute(c.Request.Context(), ucSchedule.ReplaceWeekDaysOffInput{
		EmployeeID: req.EmployeeID,
		WeekStart:  req.WeekStart,
		WeekEnd:    req.WeekEnd,
		Dates:      req.Dates,
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "francos_replaced",
		Entity:   "day_off",
		EntityID: req.EmployeeID + "|" + req.WeekStart,
		Metadata: gin.H{"dates": req.Dates},
	})

	httpresp.OK(c, gin.H{"ok": true, "inserted": inserted})
}
