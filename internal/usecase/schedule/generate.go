package schedule

import (
	"context"

	"github.com/lacantina/turnos-api/internal/dates"
	domain "github.com/lacantina/turnos-api/internal/domain/roster"
	"github.com/lacantina/turnos-api/internal/httperr"
	"github.com/lacantina/turnos-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type GenerateScheduleInput struct {
	StartDate string
	EndDate   string

	StartTime string
	EndTime   string

	EmployeeIDs []string
	Overwrite   bool
}

// ======================================================
// USE CASE
// ======================================================

type GenerateSchedule struct {
	repo domain.Repository
}

func NewGenerateSchedule(repo domain.Repository) *GenerateSchedule {
	return &GenerateSchedule{repo: repo}
}

// Execute fills every (employee, date) cell in the inclusive range with one
// shift, skipping days the employee has off. With Overwrite set, existing
// shifts in the range are removed first. Delete and insert are not wrapped
// in one transaction; concurrent generations over the same range can
// interleave (single-admin usage assumed).
func (uc *GenerateSchedule) Execute(
	ctx context.Context,
	in GenerateScheduleInput,
) (int, error) {

	// --------------------------------------------------
	// 1. Validation, before any mutation
	// --------------------------------------------------
	if !dates.IsYMD(in.StartDate) || !dates.IsYMD(in.EndDate) {
		return 0, httperr.ErrBusiness("invalid_range", "Rango de fechas requerido (YYYY-MM-DD).")
	}
	if in.StartDate > in.EndDate {
		return 0, httperr.ErrBusiness("invalid_range", "La fecha de inicio debe ser anterior a la de fin.")
	}
	if !dates.IsHHMM(in.StartTime) || !dates.IsHHMM(in.EndTime) {
		return 0, httperr.ErrBusiness("invalid_times", "start_time y end_time requeridos (HH:MM).")
	}
	if in.StartTime >= in.EndTime {
		return 0, httperr.ErrBusiness("invalid_times", "La hora de inicio debe ser menor a la de fin.")
	}

	employeeIDs := dedupe(in.EmployeeIDs)
	if len(employeeIDs) == 0 {
		return 0, httperr.ErrBusiness("missing_employees", "employee_ids requerido.")
	}

	// --------------------------------------------------
	// 2. Overwrite: clear the range for those employees
	// --------------------------------------------------
	if in.Overwrite {
		if err := uc.repo.DeleteShiftsInRange(ctx, employeeIDs, in.StartDate, in.EndDate); err != nil {
			return 0, err
		}
	}

	// --------------------------------------------------
	// 3. Francos in range, keyed (employee|date)
	// --------------------------------------------------
	offs, err := uc.repo.ListDaysOffForEmployees(ctx, employeeIDs, in.StartDate, in.EndDate)
	if err != nil {
		return 0, err
	}

	offSet := make(map[string]struct{}, len(offs))
	for _, o := range offs {
		offSet[o.EmployeeID+"|"+o.Date] = struct{}{}
	}

	// --------------------------------------------------
	// 4. Cross product employees x days, minus francos
	// --------------------------------------------------
	days, err := dates.DaysBetween(in.StartDate, in.EndDate)
	if err != nil {
		return 0, err
	}

	var rows []models.Shift
	for _, emp := range employeeIDs {
		for _, d := range days {
			if _, off := offSet[emp+"|"+d]; off {
				continue
			}
			rows = append(rows, models.Shift{
				EmployeeID: emp,
				Date:       d,
				StartTime:  in.StartTime,
				EndTime:    in.EndTime,
			})
		}
	}

	// --------------------------------------------------
	// 5. Bulk insert
	// --------------------------------------------------
	if len(rows) == 0 {
		return 0, nil
	}
	if err := uc.repo.CreateShifts(ctx, rows); err != nil {
		return 0, err
	}

	return len(rows), nil
}

// MonthBounds resolves a "YYYY-MM" month into the inclusive range the
// generator consumes.
func MonthBounds(month string) (string, string, error) {
	start, end, err := dates.MonthBounds(month)
	if err != nil {
		return "", "", httperr.ErrBusiness("invalid_month", "month requerido (YYYY-MM).")
	}
	return start, end, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
