package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lacantina/turnos-api/internal/archive"
	"github.com/lacantina/turnos-api/internal/audit"
	"github.com/lacantina/turnos-api/internal/middleware"
	ucExport "github.com/lacantina/turnos-api/internal/usecase/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	grid       *ucExport.BuildWeekGrid
	byEmployee *ucExport.BuildWeekByEmployee
	archiver   *archive.Archiver
	audit      *audit.Dispatcher
}

func NewExportHandler(
	grid *ucExport.BuildWeekGrid,
	byEmployee *ucExport.BuildWeekByEmployee,
	archiver *archive.Archiver,
	auditDispatcher *audit.Dispatcher,
) *ExportHandler {
	return &ExportHandler{
		grid:       grid,
		byEmployee: byEmployee,
		archiver:   archiver,
		audit:      auditDispatcher,
	}
}

// WeekGrid streams the slot-grid workbook for the week.
func (h *ExportHandler) WeekGrid(c *gin.Context) {
	weekStart := c.Query("week_start")

	file, err := h.grid.Execute(c.Request.Context(), weekStart)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	h.finish(c, file, "week_grid")
}

// WeekByEmployee streams the per-employee workbook for the week.
func (h *ExportHandler) WeekByEmployee(c *gin.Context) {
	file, err := h.byEmployee.Execute(c.Request.Context(), ucExport.BuildWeekByEmployeeInput{
		WeekStart:  c.Query("week_start"),
		ShowHours:  c.Query("show_hours") == "true",
		SlotCutoff: c.Query("slot_cutoff"),
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	h.finish(c, file, "week_by_employee")
}

func (h *ExportHandler) finish(c *gin.Context, file *ucExport.File, layout string) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	h.archiver.Store(file.Filename, file.Content)

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "week_exported",
		Entity:   "export",
		EntityID: file.Filename,
		Metadata: gin.H{"layout": layout},
	})

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Filename))
	c.Data(http.StatusOK, xlsxContentType, file.Content)
}
