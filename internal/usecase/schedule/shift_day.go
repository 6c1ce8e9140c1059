package schedule

import (
	"context"

	"github.com/lacantina/turnos-api/internal/dates"
	domain "github.com/lacantina/turnos-api/internal/domain/roster"
	"github.com/lacantina/turnos-api/internal/httperr"
	"github.com/lacantina/turnos-api/internal/models"
)

type UpsertDayShiftInput struct {
	EmployeeID string
	Date       string
	StartTime  string
	EndTime    string
	Notes      string
}

// UpsertDayShift writes exactly one shift for (employee, date), replacing
// any previous assignment for that day. A franco on that day blocks it.
type UpsertDayShift struct {
	repo domain.Repository
}

func NewUpsertDayShift(repo domain.Repository) *UpsertDayShift {
	return &UpsertDayShift{repo: repo}
}

func (uc *UpsertDayShift) Execute(ctx context.Context, in UpsertDayShiftInput) error {
	if in.EmployeeID == "" || !dates.IsYMD(in.Date) {
		return httperr.ErrBusiness("invalid_request", "employee_id y date requeridos.")
	}
	if !dates.IsHHMM(in.StartTime) || !dates.IsHHMM(in.EndTime) {
		return httperr.ErrBusiness("invalid_times", "start_time y end_time requeridos (HH:MM).")
	}
	if in.StartTime >= in.EndTime {
		return httperr.ErrBusiness("invalid_times", "La hora de inicio debe ser menor a la de fin.")
	}

	off, err := uc.repo.HasDayOff(ctx, in.EmployeeID, in.Date)
	if err != nil {
		return err
	}
	if off {
		return httperr.ErrBusiness("day_is_off", "Ese día es franco. Quitá el franco para asignar horario.")
	}

	return uc.repo.UpsertShift(ctx, &models.Shift{
		EmployeeID: in.EmployeeID,
		Date:       in.Date,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Notes:      in.Notes,
	})
}

// DeleteDayShift removes whatever shift exists for (employee, date).
type DeleteDayShift struct {
	repo domain.Repository
}

func NewDeleteDayShift(repo domain.Repository) *DeleteDayShift {
	return &DeleteDayShift{repo: repo}
}

func (uc *DeleteDayShift) Execute(ctx context.Context, employeeID, date string) error {
	if employeeID == "" || !dates.IsYMD(date) {
		return httperr.ErrBusiness("invalid_request", "employee_id y date requeridos.")
	}
	return uc.repo.DeleteShift(ctx, employeeID, date)
}
