package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lacantina/turnos-api/internal/colors"
	"github.com/lacantina/turnos-api/internal/dates"
	domain "github.com/lacantina/turnos-api/internal/domain/roster"
	"github.com/lacantina/turnos-api/internal/httperr"
)

type BuildWeekByEmployeeInput struct {
	WeekStart string

	// ShowHours switches cells between "HH:MM–HH:MM" and the slot label.
	ShowHours bool

	// SlotCutoff overrides the TM/TT split; empty means 14:00.
	SlotCutoff string
}

// BuildWeekByEmployee renders the per-employee layout: one row per
// employee (every employee, shifts or not), one column per day.
type BuildWeekByEmployee struct {
	repo domain.Repository
}

func NewBuildWeekByEmployee(repo domain.Repository) *BuildWeekByEmployee {
	return &BuildWeekByEmployee{repo: repo}
}

func (uc *BuildWeekByEmployee) Execute(
	ctx context.Context,
	in BuildWeekByEmployeeInput,
) (*File, error) {

	cutoff := in.SlotCutoff
	if cutoff == "" {
		cutoff = domain.DefaultSlotCutoff
	}
	if !dates.IsHHMM(cutoff) {
		return nil, httperr.ErrBusiness("invalid_cutoff", "slot_cutoff debe ser HH:MM.")
	}

	data, err := loadWeek(ctx, uc.repo, in.WeekStart, cutoff)
	if err != nil {
		return nil, err
	}

	f, st, err := newWeekSheet(data.Days, nameColWidth)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	blankStyle, err := st.blank()
	if err != nil {
		return nil, err
	}
	francoStyle, err := st.fill(colors.FrancoFillHex)
	if err != nil {
		return nil, err
	}
	brownStyle, err := st.fill(brownFill)
	if err != nil {
		return nil, err
	}

	for i, e := range data.Employees {
		row := 2 + i
		if err := f.SetRowHeight(sheetName, row, rowHeight); err != nil {
			return nil, err
		}

		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(sheetName, labelCell, nameWithRole(e.Name, e.RoleLabel)); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, labelCell, labelCell, brownStyle); err != nil {
			return nil, err
		}

		for j, day := range data.Days {
			cell, _ := excelize.CoordinatesToCellName(2+j, row)

			shift, worked := data.Shifts[key(e.ID, day)]

			switch {
			case data.isOff(e.ID, day):
				if err := f.SetCellValue(sheetName, cell, "F"); err != nil {
					return nil, err
				}
				if err := f.SetCellStyle(sheetName, cell, cell, francoStyle); err != nil {
					return nil, err
				}

			case worked:
				text := string(domain.SlotFromStart(dates.HHMM(shift.StartTime), cutoff))
				if in.ShowHours {
					text = fmt.Sprintf("%s–%s", dates.HHMM(shift.StartTime), dates.HHMM(shift.EndTime))
				}
				fillStyle, err := st.fill(e.ColorHex)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheetName, cell, text); err != nil {
					return nil, err
				}
				if err := f.SetCellStyle(sheetName, cell, cell, fillStyle); err != nil {
					return nil, err
				}

			default:
				if err := f.SetCellStyle(sheetName, cell, cell, blankStyle); err != nil {
					return nil, err
				}
			}
		}
	}

	return freezeAndClose(f, fmt.Sprintf("agenda_por_empleado_%s.xlsx", in.WeekStart))
}
