package schedule

import (
	"context"

	"github.com/lacantina/turnos-api/internal/dates"
	domain "github.com/lacantina/turnos-api/internal/domain/roster"
	"github.com/lacantina/turnos-api/internal/httperr"
)

type ReplaceWeekDaysOffInput struct {
	EmployeeID string
	WeekStart  string
	WeekEnd    string
	Dates      []string
}

// ReplaceWeekDaysOff swaps all francos of one employee inside a week for
// exactly the provided list.
type ReplaceWeekDaysOff struct {
	repo domain.Repository
}

func NewReplaceWeekDaysOff(repo domain.Repository) *ReplaceWeekDaysOff {
	return &ReplaceWeekDaysOff{repo: repo}
}

func (uc *ReplaceWeekDaysOff) Execute(
	ctx context.Context,
	in ReplaceWeekDaysOffInput,
) (int, error) {

	if in.EmployeeID == "" {
		return 0, httperr.ErrBusiness("invalid_request", "employee_id requerido.")
	}
	if !dates.IsYMD(in.WeekStart) || !dates.IsYMD(in.WeekEnd) {
		return 0, httperr.ErrBusiness("invalid_range", "weekStart y weekEnd requeridos.")
	}
	if in.Dates == nil {
		return 0, httperr.ErrBusiness("invalid_dates", "dates debe ser un array.")
	}

	for _, d := range in.Dates {
		if !dates.IsYMD(d) {
			return 0, httperr.ErrBusiness("invalid_dates", "dates debe contener fechas YYYY-MM-DD.")
		}
		if d < in.WeekStart || d > in.WeekEnd {
			return 0, httperr.ErrBusiness("invalid_dates", "dates debe estar dentro de la semana.")
		}
	}

	return uc.repo.ReplaceDaysOffInRange(
		ctx,
		in.EmployeeID,
		in.WeekStart,
		in.WeekEnd,
		dedupe(in.Dates),
	)
}
