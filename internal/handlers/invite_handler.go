package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lacantina/turnos-api/internal/audit"
	"github.com/lacantina/turnos-api/internal/httpresp"
	"github.com/lacantina/turnos-api/internal/middleware"
	ucInvite "github.com/lacantina/turnos-api/internal/usecase/invite"
)

type InviteHandler struct {
	invite *ucInvite.InviteEmployee
	audit  *audit.Dispatcher
}

func NewInviteHandler(
	invite *ucInvite.InviteEmployee,
	auditDispatcher *audit.Dispatcher,
) *InviteHandler {
	return &InviteHandler{invite: invite, audit: auditDispatcher}
}

type InviteRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	JobRole  string `json:"job_role"`
}

func (h *InviteHandler) Invite(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	result, err := h.invite.Execute(c.Request.Context(), ucInvite.InviteEmployeeInput{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
		JobRole:  req.JobRole,
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "employee_invited",
		Entity:   "profile",
		EntityID: result.ProfileID,
	})

	httpresp.OK(c, gin.H{
		"ok":       true,
		"userId":   result.ProfileID,
		"job_role": result.JobRole,
	})
}
