package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lacantina/turnos-api/internal/httperr"
)

// writeUsecaseError maps use case failures onto the error envelope:
// business rule violations keep their own code and Spanish message,
// anything else surfaces as a 400 storage error, the way the original
// data layer reported failures.
func writeUsecaseError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.BadRequest(c, be.Code, be.Message)
		return
	}
	httperr.BadRequest(c, "storage_error", err.Error())
}
