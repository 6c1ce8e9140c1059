package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lacantina/turnos-api/internal/archive"
	"github.com/lacantina/turnos-api/internal/audit"
	"github.com/lacantina/turnos-api/internal/config"
	"github.com/lacantina/turnos-api/internal/handlers"
	infraRepo "github.com/lacantina/turnos-api/internal/infra/repository"
	"github.com/lacantina/turnos-api/internal/invites"
	"github.com/lacantina/turnos-api/internal/mailer"
	"github.com/lacantina/turnos-api/internal/middleware"
	ucExport "github.com/lacantina/turnos-api/internal/usecase/export"
	ucInvite "github.com/lacantina/turnos-api/internal/usecase/invite"
	ucSchedule "github.com/lacantina/turnos-api/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	rosterRepo := infraRepo.NewRosterGormRepository(db)
	inviteStore := invites.NewStore(cfg)
	inviteMailer := mailer.New(cfg)
	exportArchiver := archive.New(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	generateUC := ucSchedule.NewGenerateSchedule(rosterRepo)
	upsertShiftUC := ucSchedule.NewUpsertDayShift(rosterRepo)
	deleteShiftUC := ucSchedule.NewDeleteDayShift(rosterRepo)
	toggleDayOffUC := ucSchedule.NewToggleDayOff(rosterRepo)
	replaceFrancosUC := ucSchedule.NewReplaceWeekDaysOff(rosterRepo)

	weekGridUC := ucExport.NewBuildWeekGrid(rosterRepo)
	weekByEmployeeUC := ucExport.NewBuildWeekByEmployee(rosterRepo)

	inviteUC := ucInvite.NewInviteEmployee(rosterRepo, inviteStore, inviteMailer)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, inviteStore)
	meHandler := handlers.NewMeHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(db, auditDispatcher)
	inviteHandler := handlers.NewInviteHandler(inviteUC, auditDispatcher)

	scheduleHandler := handlers.NewScheduleHandler(generateUC, auditDispatcher)
	shiftDayHandler := handlers.NewShiftDayHandler(upsertShiftUC, deleteShiftUC, auditDispatcher)
	daysOffHandler := handlers.NewDaysOffHandler(toggleDayOffUC, replaceFrancosUC, auditDispatcher)

	calendarHandler := handlers.NewCalendarHandler(rosterRepo)
	exportHandler := handlers.NewExportHandler(weekGridUC, weekByEmployeeUC, exportArchiver, auditDispatcher)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/accept-invite", authHandler.AcceptInvite)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/my-calendar", calendarHandler.MyCalendar)

			// ------------------------------
			// ADMIN ONLY
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin(db))
			{
				admin.GET("/employees", employeeHandler.List)
				admin.PATCH("/employees/:id", employeeHandler.Update)
				admin.POST("/invite", inviteHandler.Invite)

				admin.POST("/schedule/week", scheduleHandler.GenerateWeek)
				admin.POST("/schedule/month", scheduleHandler.GenerateMonth)

				admin.POST("/shift-day", shiftDayHandler.Upsert)
				admin.DELETE("/shift-day", shiftDayHandler.Delete)

				admin.POST("/days-off", daysOffHandler.Toggle)
				admin.POST("/francos", daysOffHandler.ReplaceWeek)

				admin.GET("/employee-month", calendarHandler.EmployeeShifts)

				admin.GET("/export/week-grid", exportHandler.WeekGrid)
				admin.GET("/export/week-by-employee", exportHandler.WeekByEmployee)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
