package export

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/lacantina/turnos-api/internal/colors"
	"github.com/lacantina/turnos-api/internal/httperr"
	"github.com/lacantina/turnos-api/internal/models"
	"github.com/lacantina/turnos-api/internal/testfixtures"
)

// Week of Monday 2025-08-11. Ana (caja) opens Monday, Dani (camarero)
// opens Tuesday, Beto (camarero) closes Tuesday and has a franco on
// Wednesday with a stale shift row left under it, Caro (runner) has
// nothing at all.
func seedGridWeek(repo *testfixtures.RosterRepo) {
	repo.AddProfiles(
		testfixtures.NewProfileFixture(
			testfixtures.WithProfileID("emp-ana"),
			testfixtures.WithFullName("Ana"),
			testfixtures.WithJobRole("caja"),
		),
		testfixtures.NewProfileFixture(
			testfixtures.WithProfileID("emp-beto"),
			testfixtures.WithFullName("Beto"),
			testfixtures.WithJobRole("camarero"),
		),
		testfixtures.NewProfileFixture(
			testfixtures.WithProfileID("emp-caro"),
			testfixtures.WithFullName("Caro"),
			testfixtures.WithJobRole("runner_bacha"),
		),
		testfixtures.NewProfileFixture(
			testfixtures.WithProfileID("emp-dani"),
			testfixtures.WithFullName("Dani"),
			testfixtures.WithJobRole("camarero"),
		),
	)

	repo.AddShift(models.Shift{EmployeeID: "emp-ana", Date: "2025-08-11", StartTime: "08:00", EndTime: "15:00"})
	repo.AddShift(models.Shift{EmployeeID: "emp-dani", Date: "2025-08-12", StartTime: "08:00", EndTime: "15:00"})
	repo.AddShift(models.Shift{EmployeeID: "emp-beto", Date: "2025-08-12", StartTime: "14:00", EndTime: "21:00"})
	repo.AddShift(models.Shift{EmployeeID: "emp-beto", Date: "2025-08-13", StartTime: "14:00", EndTime: "21:00"})
	repo.AddDayOff("emp-beto", "2025-08-13")
}

func openWorkbook(t *testing.T, file *File) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func cellValue(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheetName, cell)
	if err != nil {
		t.Fatalf("GetCellValue(%s): %v", cell, err)
	}
	return v
}

// cellFillHex returns the pattern fill of a cell, or "" when it has none.
// Stored colors may carry an alpha prefix, so callers suffix-match.
func cellFillHex(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()
	styleID, err := f.GetCellStyle(sheetName, cell)
	if err != nil {
		t.Fatalf("GetCellStyle(%s): %v", cell, err)
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		t.Fatalf("GetStyle(%d): %v", styleID, err)
	}
	if len(style.Fill.Color) == 0 {
		return ""
	}
	return style.Fill.Color[0]
}

func TestWeekGridLayout(t *testing.T) {
	repo := testfixtures.NewRosterRepo()
	seedGridWeek(repo)

	file, err := NewBuildWeekGrid(repo).Execute(context.Background(), "2025-08-11")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if file.Filename != "semana_grid_2025-08-11.xlsx" {
		t.Errorf("filename = %q", file.Filename)
	}

	f := openWorkbook(t, file)

	// Header row: corner blank, Spanish day labels across.
	if got := cellValue(t, f, "A1"); got != "" {
		t.Errorf("A1 = %q, want empty corner", got)
	}
	if got := cellValue(t, f, "B1"); got != "Lunes 11" {
		t.Errorf("B1 = %q, want Lunes 11", got)
	}
	if got := cellValue(t, f, "H1"); got != "Domingo 17" {
		t.Errorf("H1 = %q, want Domingo 17", got)
	}

	// TM block: Ana (caja first) then Dani. Beto is TT-only, Caro works
	// nothing, neither may appear here.
	if got := cellValue(t, f, "B2"); got != "ANA (caja)" {
		t.Errorf("B2 = %q, want ANA (caja)", got)
	}
	if got := cellValue(t, f, "C3"); got != "DANI (camarero/a)" {
		t.Errorf("C3 = %q, want DANI (camarero/a)", got)
	}
	if got := cellValue(t, f, "C2"); got != "" {
		t.Errorf("C2 = %q, want blank (Ana does not work Tuesday)", got)
	}

	// Row 4 is the spacer; TT block starts at row 5 with Beto alone.
	if got := cellValue(t, f, "C5"); got != "BETO (camarero/a)" {
		t.Errorf("C5 = %q, want BETO (camarero/a)", got)
	}

	// Beto's Wednesday franco wins over the shift row stored for the same
	// day.
	if got := cellValue(t, f, "D5"); got != "F" {
		t.Errorf("D5 = %q, want F", got)
	}
	if fill := cellFillHex(t, f, "D5"); !strings.HasSuffix(fill, colors.FrancoFillHex) {
		t.Errorf("franco fill = %q, want %s", fill, colors.FrancoFillHex)
	}

	// Shift cells carry the employee's deterministic color.
	if fill := cellFillHex(t, f, "B2"); !strings.HasSuffix(fill, colors.HexForKey("emp-ana")) {
		t.Errorf("Ana's fill = %q, want %s", fill, colors.HexForKey("emp-ana"))
	}

	// Caro appears nowhere.
	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	for _, row := range rows {
		for _, cell := range row {
			if strings.Contains(cell, "CARO") {
				t.Fatal("employee without shifts leaked into the grid")
			}
		}
	}
}

func TestWeekGridSlotLabelsMerged(t *testing.T) {
	repo := testfixtures.NewRosterRepo()
	seedGridWeek(repo)

	file, err := NewBuildWeekGrid(repo).Execute(context.Background(), "2025-08-11")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	f := openWorkbook(t, file)

	if got := cellValue(t, f, "A2"); got != "TM" {
		t.Errorf("A2 = %q, want TM", got)
	}
	if got := cellValue(t, f, "A5"); got != "TT" {
		t.Errorf("A5 = %q, want TT", got)
	}

	merges, err := f.GetMergeCells(sheetName)
	if err != nil {
		t.Fatalf("GetMergeCells: %v", err)
	}
	foundTM := false
	for _, m := range merges {
		if m.GetStartAxis() == "A2" && m.GetEndAxis() == "A3" {
			foundTM = true
		}
	}
	if !foundTM {
		t.Errorf("TM label not merged over its block, merges: %v", merges)
	}
}

func TestWeekGridEmptyWeek(t *testing.T) {
	repo := testfixtures.NewRosterRepo()
	repo.AddProfiles(testfixtures.NewProfileFixture(
		testfixtures.WithProfileID("emp-solo"),
		testfixtures.WithFullName("Solo"),
	))

	file, err := NewBuildWeekGrid(repo).Execute(context.Background(), "2025-08-11")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	f := openWorkbook(t, file)
	if got := cellValue(t, f, "B1"); got != "Lunes 11" {
		t.Errorf("B1 = %q, header missing on empty week", got)
	}
	if got := cellValue(t, f, "A2"); got != "" {
		t.Errorf("A2 = %q, want no block labels on empty week", got)
	}
}

func TestWeekGridInvalidWeekStart(t *testing.T) {
	repo := testfixtures.NewRosterRepo()
	_, err := NewBuildWeekGrid(repo).Execute(context.Background(), "el lunes")
	if !httperr.IsBusiness(err, "invalid_week_start") {
		t.Errorf("err = %v, want invalid_week_start", err)
	}
}
