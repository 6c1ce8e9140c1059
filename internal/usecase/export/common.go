package export

import (
	"context"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lacantina/turnos-api/internal/colors"
	"github.com/lacantina/turnos-api/internal/dates"
	domain "github.com/lacantina/turnos-api/internal/domain/roster"
	"github.com/lacantina/turnos-api/internal/httperr"
	"github.com/lacantina/turnos-api/internal/models"
)

const (
	sheetName = "Semana"

	brownFill = "5B1E12"
	whiteFont = "FFFFFF"

	labelColWidth = 10
	nameColWidth  = 28
	dayColWidth   = 22
	rowHeight     = 22
	spacerHeight  = 6
)

// File is a rendered workbook ready to stream as an attachment.
type File struct {
	Filename string
	Content  []byte
}

// employeeRow is one employee prepared for rendering: uppercased name,
// puesto label and precedence, and the deterministic fill color.
type employeeRow struct {
	ID        string
	Name      string
	RoleLabel string
	RoleOrder int
	ColorHex  string
}

// weekData is everything one week's render needs, indexed by "emp|date".
type weekData struct {
	WeekStart string
	Days      []string
	Employees []employeeRow
	OffSet    map[string]struct{}
	Slots     map[string]map[domain.Slot]struct{}
	Shifts    map[string]models.Shift
}

func key(employeeID, date string) string {
	return employeeID + "|" + date
}

// loadWeek reads profiles, shifts and francos for the 7 days starting at
// weekStart and indexes them for rendering. cutoff drives the TM/TT split.
func loadWeek(
	ctx context.Context,
	repo domain.Repository,
	weekStart string,
	cutoff string,
) (*weekData, error) {

	if !dates.IsYMD(weekStart) {
		return nil, httperr.ErrBusiness("invalid_week_start", "weekStart requerido (YYYY-MM-DD).")
	}

	days, err := dates.WeekDays(weekStart)
	if err != nil {
		return nil, err
	}
	weekEnd := days[6]

	profiles, err := repo.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	shifts, err := repo.ListShiftsInRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	offs, err := repo.ListDaysOffInRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	data := &weekData{
		WeekStart: weekStart,
		Days:      days,
		OffSet:    make(map[string]struct{}, len(offs)),
		Slots:     make(map[string]map[domain.Slot]struct{}, len(shifts)),
		Shifts:    make(map[string]models.Shift, len(shifts)),
	}

	for _, p := range profiles {
		name := p.ID
		if p.FullName != nil && *p.FullName != "" {
			name = *p.FullName
		}
		disp := domain.DisplayJobRole(p.JobRole)
		data.Employees = append(data.Employees, employeeRow{
			ID:        p.ID,
			Name:      strings.ToUpper(name),
			RoleLabel: disp.Label,
			RoleOrder: disp.Order,
			ColorHex:  colors.HexForKey(p.ID),
		})
	}
	sortEmployees(data.Employees)

	for _, o := range offs {
		data.OffSet[key(o.EmployeeID, o.Date)] = struct{}{}
	}

	for _, s := range shifts {
		k := key(s.EmployeeID, s.Date)
		slot := domain.SlotFromStart(dates.HHMM(s.StartTime), cutoff)
		if data.Slots[k] == nil {
			data.Slots[k] = make(map[domain.Slot]struct{})
		}
		data.Slots[k][slot] = struct{}{}
		data.Shifts[k] = s
	}

	return data, nil
}

func sortEmployees(rows []employeeRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].RoleOrder != rows[j].RoleOrder {
			return rows[i].RoleOrder < rows[j].RoleOrder
		}
		return rows[i].Name < rows[j].Name
	})
}

func (d *weekData) isOff(employeeID, date string) bool {
	_, off := d.OffSet[key(employeeID, date)]
	return off
}

func (d *weekData) hasSlot(employeeID, date string, slot domain.Slot) bool {
	set := d.Slots[key(employeeID, date)]
	if set == nil {
		return false
	}
	_, ok := set[slot]
	return ok
}

// hasAnySlot reports whether the employee works the given slot at least
// once during the week; it decides grid block membership.
func (d *weekData) hasAnySlot(employeeID string, slot domain.Slot) bool {
	for _, day := range d.Days {
		if d.hasSlot(employeeID, day, slot) {
			return true
		}
	}
	return false
}

func nameWithRole(name, role string) string {
	if role == "" {
		return name
	}
	return name + " (" + role + ")"
}

// --------------------------------------------------
// Styles
// --------------------------------------------------

// styler caches excelize style ids per fill color; every populated cell
// shares the thin border + centered wrapped alignment.
type styler struct {
	f     *excelize.File
	cache map[string]int
}

func newStyler(f *excelize.File) *styler {
	return &styler{f: f, cache: make(map[string]int)}
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
	}
}

func (s *styler) fill(hex string) (int, error) {
	if id, ok := s.cache["fill:"+hex]; ok {
		return id, nil
	}
	id, err := s.f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex}},
		Font:      &excelize.Font{Bold: true, Color: whiteFont},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})
	if err != nil {
		return 0, err
	}
	s.cache["fill:"+hex] = id
	return id, nil
}

func (s *styler) blank() (int, error) {
	if id, ok := s.cache["blank"]; ok {
		return id, nil
	}
	id, err := s.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})
	if err != nil {
		return 0, err
	}
	s.cache["blank"] = id
	return id, nil
}

func (s *styler) border() (int, error) {
	if id, ok := s.cache["border"]; ok {
		return id, nil
	}
	id, err := s.f.NewStyle(&excelize.Style{Border: thinBorders()})
	if err != nil {
		return 0, err
	}
	s.cache["border"] = id
	return id, nil
}

// --------------------------------------------------
// Shared sheet scaffolding
// --------------------------------------------------

// newWeekSheet opens a workbook with the header row written: blank brown
// corner cell plus one Spanish day label per column.
func newWeekSheet(days []string, firstColWidth float64) (*excelize.File, *styler, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, nil, err
	}

	st := newStyler(f)

	if err := f.SetColWidth(sheetName, "A", "A", firstColWidth); err != nil {
		return nil, nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(1 + len(days))
	if err := f.SetColWidth(sheetName, "B", lastCol, dayColWidth); err != nil {
		return nil, nil, err
	}

	if err := f.SetRowHeight(sheetName, 1, rowHeight); err != nil {
		return nil, nil, err
	}

	headerStyle, err := st.fill(brownFill)
	if err != nil {
		return nil, nil, err
	}

	for c := 1; c <= len(days)+1; c++ {
		cell, _ := excelize.CoordinatesToCellName(c, 1)
		value := ""
		if c > 1 {
			value = dates.HeaderLabel(days[c-2])
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return nil, nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, nil, err
		}
	}

	return f, st, nil
}

// freezeAndClose freezes the header row plus first column and serializes
// the workbook.
func freezeAndClose(f *excelize.File, filename string) (*File, error) {
	err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	})
	if err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return &File{Filename: filename, Content: buf.Bytes()}, nil
}
