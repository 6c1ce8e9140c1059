package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lacantina/turnos-api/internal/colors"
	domain "github.com/lacantina/turnos-api/internal/domain/roster"
)

// BuildWeekGrid renders the slot-grid layout: a TM block stacked over a TT
// block, each listing only the employees who work that slot at least once
// in the week. Franco cells win over shift cells.
type BuildWeekGrid struct {
	repo domain.Repository
}

func NewBuildWeekGrid(repo domain.Repository) *BuildWeekGrid {
	return &BuildWeekGrid{repo: repo}
}

func (uc *BuildWeekGrid) Execute(ctx context.Context, weekStart string) (*File, error) {
	data, err := loadWeek(ctx, uc.repo, weekStart, domain.DefaultSlotCutoff)
	if err != nil {
		return nil, err
	}

	f, st, err := newWeekSheet(data.Days, labelColWidth)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rowPtr := 2
	for _, slot := range []domain.Slot{domain.SlotTM, domain.SlotTT} {
		rowPtr, err = uc.writeBlock(f, st, data, slot, rowPtr)
		if err != nil {
			return nil, err
		}
	}

	return freezeAndClose(f, fmt.Sprintf("semana_grid_%s.xlsx", weekStart))
}

func (uc *BuildWeekGrid) writeBlock(
	f *excelize.File,
	st *styler,
	data *weekData,
	slot domain.Slot,
	rowPtr int,
) (int, error) {

	var rows []employeeRow
	for _, e := range data.Employees {
		if data.hasAnySlot(e.ID, slot) {
			rows = append(rows, e)
		}
	}
	if len(rows) == 0 {
		return rowPtr, nil
	}

	blankStyle, err := st.blank()
	if err != nil {
		return 0, err
	}
	borderStyle, err := st.border()
	if err != nil {
		return 0, err
	}
	francoStyle, err := st.fill(colors.FrancoFillHex)
	if err != nil {
		return 0, err
	}
	brownStyle, err := st.fill(brownFill)
	if err != nil {
		return 0, err
	}

	blockStart := rowPtr

	for _, e := range rows {
		if err := f.SetRowHeight(sheetName, rowPtr, rowHeight); err != nil {
			return 0, err
		}

		for i, day := range data.Days {
			cell, _ := excelize.CoordinatesToCellName(2+i, rowPtr)

			switch {
			case data.isOff(e.ID, day):
				if err := f.SetCellValue(sheetName, cell, "F"); err != nil {
					return 0, err
				}
				if err := f.SetCellStyle(sheetName, cell, cell, francoStyle); err != nil {
					return 0, err
				}

			case data.hasSlot(e.ID, day, slot):
				fillStyle, err := st.fill(e.ColorHex)
				if err != nil {
					return 0, err
				}
				if err := f.SetCellValue(sheetName, cell, nameWithRole(e.Name, e.RoleLabel)); err != nil {
					return 0, err
				}
				if err := f.SetCellStyle(sheetName, cell, cell, fillStyle); err != nil {
					return 0, err
				}

			default:
				if err := f.SetCellStyle(sheetName, cell, cell, blankStyle); err != nil {
					return 0, err
				}
			}
		}

		labelCell, _ := excelize.CoordinatesToCellName(1, rowPtr)
		if err := f.SetCellStyle(sheetName, labelCell, labelCell, borderStyle); err != nil {
			return 0, err
		}

		rowPtr++
	}

	// One merged label cell spans the block.
	top, _ := excelize.CoordinatesToCellName(1, blockStart)
	bottom, _ := excelize.CoordinatesToCellName(1, rowPtr-1)
	if err := f.MergeCell(sheetName, top, bottom); err != nil {
		return 0, err
	}
	if err := f.SetCellValue(sheetName, top, string(slot)); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheetName, top, bottom, brownStyle); err != nil {
		return 0, err
	}

	// Thin spacer row between blocks.
	if err := f.SetRowHeight(sheetName, rowPtr, spacerHeight); err != nil {
		return 0, err
	}
	for c := 1; c <= len(data.Days)+1; c++ {
		cell, _ := excelize.CoordinatesToCellName(c, rowPtr)
		if err := f.SetCellStyle(sheetName, cell, cell, borderStyle); err != nil {
			return 0, err
		}
	}
	rowPtr++

	return rowPtr, nil
}
