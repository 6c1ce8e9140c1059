package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lacantina/turnos-api/internal/audit"
	"github.com/lacantina/turnos-api/internal/httpresp"
	"github.com/lacantina/turnos-api/internal/middleware"
	ucSchedule "github.com/lacantina/turnos-api/internal/usecase/schedule"
)

type ScheduleHandler struct {
	generate *ucSchedule.GenerateSchedule
	audit    *audit.Dispatcher
}

func NewScheduleHandler(
	generate *ucSchedule.GenerateSchedule,
	auditDispatcher *audit.Dispatcher,
) *ScheduleHandler {
	return &ScheduleHandler{
		generate: generate,
		audit:    auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type GenerateWeekRequest struct {
	WeekStart   string   `json:"week_start" binding:"required"`
	WeekEnd     string   `json:"week_end" binding:"required"`
	StartTime   string   `json:"start_time" binding:"required"`
	EndTime     string   `json:"end_time" binding:"required"`
	EmployeeIDs []string `json:"employee_ids" binding:"required"`
	Overwrite   bool     `json:"overwrite"`
}

type GenerateMonthRequest struct {
	Month       string   `json:"month" binding:"required"`
	StartTime   string   `json:"start_time" binding:"required"`
	EndTime     string   `json:"end_time" binding:"required"`
	EmployeeIDs []string `json:"employee_ids" binding:"required"`
	Overwrite   bool     `json:"overwrite"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ScheduleHandler) GenerateWeek(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	var req GenerateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	count, err := h.generate.Execute(c.Request.Context(), ucSchedule.GenerateScheduleInput{
		StartDate:   req.WeekStart,
		EndDate:     req.WeekEnd,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		EmployeeIDs: req.EmployeeIDs,
		Overwrite:   req.Overwrite,
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "schedule_generated",
		Entity:   "shift",
		EntityID: req.WeekStart,
		Metadata: gin.H{"range": gin.H{"start": req.WeekStart, "end": req.WeekEnd}, "count": count, "overwrite": req.Overwrite},
	})

	httpresp.OK(c, gin.H{"ok": true, "count": count})
}

func (h *ScheduleHandler) GenerateMonth(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	var req GenerateMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	monthStart, monthEnd, err := ucSchedule.MonthBounds(req.Month)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	count, err := h.generate.Execute(c.Request.Context(), ucSchedule.GenerateScheduleInput{
		StartDate:   monthStart,
		EndDate:     monthEnd,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		EmployeeIDs: req.EmployeeIDs,
		Overwrite:   req.Overwrite,
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "schedule_generated",
		Entity:   "shift",
		EntityID: req.Month,
		Metadata: gin.H{"range": gin.H{"start": monthStart, "end": monthEnd}, "count": count, "overwrite": req.Overwrite},
	})

	httpresp.OK(c, gin.H{
		"ok":    true,
		"count": count,
		"range": gin.H{"start": monthStart, "end": monthEnd},
	})
}
