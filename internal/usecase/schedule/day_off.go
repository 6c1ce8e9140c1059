package schedule

import (
	"context"
	"log"

	"github.com/lacantina/turnos-api/internal/dates"
	domain "github.com/lacantina/turnos-api/internal/domain/roster"
	"github.com/lacantina/turnos-api/internal/httperr"
)

type ToggleDayOffInput struct {
	EmployeeID string
	Date       string
	On         bool
}

// ToggleDayOff enables or disables a franco. Enabling is idempotent (a
// duplicate row is a no-op) and also clears any shift on that date,
// best-effort: if the cleanup fails the franco still stands and the
// failure is only logged.
type ToggleDayOff struct {
	repo domain.Repository
}

func NewToggleDayOff(repo domain.Repository) *ToggleDayOff {
	return &ToggleDayOff{repo: repo}
}

func (uc *ToggleDayOff) Execute(ctx context.Context, in ToggleDayOffInput) error {
	if in.EmployeeID == "" || !dates.IsYMD(in.Date) {
		return httperr.ErrBusiness("invalid_request", "employee_id y date requeridos.")
	}

	if !in.On {
		return uc.repo.DeleteDayOff(ctx, in.EmployeeID, in.Date)
	}

	if err := uc.repo.CreateDayOff(ctx, in.EmployeeID, in.Date); err != nil {
		return err
	}

	if err := uc.repo.DeleteShift(ctx, in.EmployeeID, in.Date); err != nil {
		log.Printf("day off set but shift cleanup failed for %s %s: %v", in.EmployeeID, in.Date, err)
	}

	return nil
}
