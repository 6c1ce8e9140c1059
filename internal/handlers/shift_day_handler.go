package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lacantina/turnos-api/internal/audit"
	"github.com/lacantina/turnos-api/internal/httpresp"
	"github.com/lacantina/turnos-api/internal/middleware"
	ucSchedule "github.com/lacantina/turnos-api/internal/usecase/schedule"
)

type ShiftDayHandler struct {
	upsert *ucSchedule.UpsertDayShift
	delete *ucSchedule.DeleteDayShift
	audit  *audit.Dispatcher
}

func NewShiftDayHandler(
	upsert *ucSchedule.UpsertDayShift,
	del *ucSchedule.DeleteDayShift,
	auditDispatcher *audit.Dispatcher,
) *ShiftDayHandler {
	return &ShiftDayHandler{
		upsert: upsert,
		delete: del,
		audit:  auditDispatcher,
	}
}

type UpsertShiftDayRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	Notes      string `json:"notes"`
}

type DeleteShiftDayRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
}

func (h *ShiftDayHandler) Upsert(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	var req UpsertShiftDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	err := h.upsert.Execute(c.Request.Context(), ucSchedule.UpsertDayShiftInput{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "shift_upserted",
		Entity:   "shift",
		EntityID: req.EmployeeID + "|" + req.Date,
	})

	httpresp.OK(c, gin.H{"ok": true})
}

func (h *ShiftDayHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	var req DeleteShiftDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	if err := h.delete.Execute(c.Request.Context(), req.EmployeeID, req.Date); err != nil {
		writeUsecaseError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "shift_deleted",
		Entity:   "shift",
		EntityID: req.EmployeeID + "|" + req.Date,
	})

	httpresp.OK(c, gin.H{"ok": true})
}
