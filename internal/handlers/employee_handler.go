package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lacantina/turnos-api/internal/audit"
	domain "github.com/lacantina/turnos-api/internal/domain/roster"
	"github.com/lacantina/turnos-api/internal/httperr"
	"github.com/lacantina/turnos-api/internal/httpresp"
	"github.com/lacantina/turnos-api/internal/middleware"
	"github.com/lacantina/turnos-api/internal/models"
)

type EmployeeHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewEmployeeHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *EmployeeHandler {
	return &EmployeeHandler{db: db, audit: auditDispatcher}
}

type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
	JobRole  *string `json:"job_role"`
}

func (h *EmployeeHandler) List(c *gin.Context) {
	var profiles []models.Profile
	if err := h.db.Order("full_name ASC").Find(&profiles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_employees", "Error al listar empleados.")
		return
	}

	httpresp.List(c, profiles)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "Empleado no encontrado.")
		return
	}

	if req.FullName != nil {
		profile.FullName = req.FullName
	}
	if req.Role != nil {
		if *req.Role != "admin" && *req.Role != "employee" {
			httperr.BadRequest(c, "invalid_role", "role debe ser admin o employee.")
			return
		}
		profile.Role = *req.Role
	}
	if req.JobRole != nil {
		profile.JobRole = domain.NormalizeJobRole(*req.JobRole)
	}

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_employee", "Error al actualizar el empleado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "employee_updated",
		Entity:   "profile",
		EntityID: profile.ID,
	})

	httpresp.OK(c, profilePayload(&profile))
}
