package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/lacantina/turnos-api/internal/httperr"
	"github.com/lacantina/turnos-api/internal/models"
	"github.com/lacantina/turnos-api/internal/testfixtures"
)

func TestGenerateSkipsDaysOff(t *testing.T) {
	repo := testfixtures.NewRosterRepo()
	uc := NewGenerateSchedule(repo)

	repo.AddDayOff("emp-a", "2025-08-12")
	repo.AddDayOff("emp-b", "2025-08-14")

	count, err := uc.Execute(context.Background(), GenerateScheduleInput{
		StartDate:   "2025-08-11",
		EndDate:     "2025-08-17",
		StartTime:   "09:00",
		EndTime:     "17:00",
		EmployeeIDs: []string{"emp-a", "emp-b"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// 2 employees x 7 days minus 2 francos.
	if count != 12 {
		t.Fatalf("count = %d, want 12", count)
	}

	for _, d := range repo.ShiftDates("emp-a") {
		if d == "2025-08-12" {
			t.Error("emp-a got a shift on their franco")
		}
	}
	for _, d := range repo.ShiftDates("emp-b") {
		if d == "2025-08-14" {
			t.Error("emp-b got a shift on their franco")
		}
	}

	if got := len(repo.ShiftDates("emp-a")); got != 6 {
		t.Errorf("emp-a has %d shifts, want 6", got)
	}
}

func TestGenerateAppliesTimesToEveryRow(t *testing.T) {
	repo := testfixtures.NewRosterRepo()
	uc := NewGenerateSchedule(repo)

	_, err := uc.Execute(context.Background(), GenerateScheduleInput{
		StartDate:   "2025-08-11",
		EndDate:     "2025-08-13",
		StartTime:   "08:00",
		EndTime:     "15:00",
		EmployeeIDs: []string{"emp-a"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, s := range repo.Shifts {
		if s.StartTime != "08:00" || s.EndTime != "15:00" {
			t.Errorf("shift %s %s has times %s-%s", s.EmployeeID, s.Date, s.StartTime, s.EndTime)
		}
	}
}

func TestGenerateOverwriteClearsRangeFirst(t *testing.T) {
	repo := testfixtures.NewRosterRepo()
	uc := NewGenerateSchedule(repo)

	repo.AddShift(models.Shift{EmployeeID: "emp-a", Date: "2025-08-12", StartTime: "10:00", EndTime: "18:00"})
	// Outside the range: must survive.
	repo.AddShift(models.Shift{EmployeeID: "emp-a", Date: "2025-08-20", StartTime: "10:00", EndTime: "18:00"})
	// Other employee inside the range: must survive too.
	repo.AddShift(models.Shift{EmployeeID: "emp-z", Date: "2025-08-12", StartTime: "10:00", EndTime: "18:00"})

	count, err := uc.Execute(context.Background(), GenerateScheduleInput{
		StartDate:   "2025-08-11",
		EndDate:     "2025-08-17",
		StartTime:   "09:00",
		EndTime:     "17:00",
		EmployeeIDs: []string{"emp-a"},
		Overwrite:   true,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if count != 7 {
		t.Fatalf("count = %d, want 7", count)
	}

	if got := repo.Shifts["emp-a|2025-08-12"]; got.StartTime != "09:00" {
		t.Errorf("overwritten shift keeps old times: %+v", got)
	}
	if _, ok := repo.Shifts["emp-a|2025-08-20"]; !ok {
		t.Error("shift outside the range was deleted")
	}
	if got := repo.Shifts["emp-z|2025-08-12"]; got.StartTime != "10:00" {
		t.Errorf("unrelated employee's shift was touched: %+v", got)
	}
}

func TestGenerateWithoutOverwriteFailsOnExisting(t *testing.T) {
	repo := testfixtures.NewRosterRepo()
	uc := NewGenerateSchedule(repo)

	repo.AddShift(models.Shift{EmployeeID: "emp-a", Date: "2025-08-12", StartTime: "10:00", EndTime: "18:00"})

	_, err := uc.Execute(context.Background(), GenerateScheduleInput{
		StartDate:   "2025-08-11",
		EndDate:     "2025-08-17",
		StartTime:   "09:00",
		EndTime:     "17:00",
		EmployeeIDs: []string{"emp-a"},
	})
	if err == nil {
		t.Fatal("expected insert failure on occupied day without overwrite")
	}
}

func TestGenerateDedupesEmployeeIDs(t *testing.T) {
	repo := testfixtures.NewRosterRepo()
	uc := NewGenerateSchedule(repo)

	count, err := uc.Execute(context.Background(), GenerateScheduleInput{
		StartDate:   "2025-08-11",
		EndDate:     "2025-08-11",
		StartTime:   "09:00",
		EndTime:     "17:00",
		EmployeeIDs: []string{"emp-a", "emp-a", "", "emp-a"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestGenerateValidation(t *testing.T) {
	cases := []struct {
		name string
		in   GenerateScheduleInput
		code string
	}{
		{
			name: "bad start date",
			in:   GenerateScheduleInput{StartDate: "11/08/2025", EndDate: "2025-08-17", StartTime: "09:00", EndTime: "17:00", EmployeeIDs: []string{"e"}},
			code: "invalid_range",
		},
		{
			name: "reversed range",
			in:   GenerateScheduleInput{StartDate: "2025-08-17", EndDate: "2025-08-11", StartTime: "09:00", EndTime: "17:00", EmployeeIDs: []string{"e"}},
			code: "invalid_range",
		},
		{
			name: "bad times",
			in:   GenerateScheduleInput{StartDate: "2025-08-11", EndDate: "2025-08-17", StartTime: "9am", EndTime: "17:00", EmployeeIDs: []string{"e"}},
			code: "invalid_times",
		},
		{
			name: "start not before end",
			in:   GenerateScheduleInput{StartDate: "2025-08-11", EndDate: "2025-08-17", StartTime: "17:00", EndTime: "09:00", EmployeeIDs: []string{"e"}},
			code: "invalid_times",
		},
		{
			name: "no employees",
			in:   GenerateScheduleInput{StartDate: "2025-08-11", EndDate: "2025-08-17", StartTime: "09:00", EndTime: "17:00", EmployeeIDs: []string{"", ""}},
			code: "missing_employees",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := testfixtures.NewRosterRepo()
			repo.AddShift(models.Shift{EmployeeID: "e", Date: "2025-08-12", StartTime: "10:00", EndTime: "18:00"})

			_, err := NewGenerateSchedule(repo).Execute(context.Background(), tc.in)

			be, ok := httperr.AsBusiness(err)
			if !ok {
				t.Fatalf("err = %v, want business error", err)
			}
			if be.Code != tc.code {
				t.Errorf("code = %q, want %q", be.Code, tc.code)
			}

			// Validation failures must not mutate anything, even with
			// Overwrite set.
			if len(repo.Shifts) != 1 {
				t.Errorf("repo mutated on invalid input: %d shifts", len(repo.Shifts))
			}
		})
	}
}

func TestGenerateRepoErrorsPropagate(t *testing.T) {
	boom := errors.New("db down")

	repo := testfixtures.NewRosterRepo()
	repo.ErrListDaysOff = boom
	if _, err := NewGenerateSchedule(repo).Execute(context.Background(), GenerateScheduleInput{
		StartDate: "2025-08-11", EndDate: "2025-08-11",
		StartTime: "09:00", EndTime: "17:00",
		EmployeeIDs: []string{"e"},
	}); !errors.Is(err, boom) {
		t.Errorf("days off error not propagated: %v", err)
	}

	repo = testfixtures.NewRosterRepo()
	repo.ErrDeleteInRange = boom
	if _, err := NewGenerateSchedule(repo).Execute(context.Background(), GenerateScheduleInput{
		StartDate: "2025-08-11", EndDate: "2025-08-11",
		StartTime: "09:00", EndTime: "17:00",
		EmployeeIDs: []string{"e"},
		Overwrite:   true,
	}); !errors.Is(err, boom) {
		t.Errorf("delete-in-range error not propagated: %v", err)
	}

	repo = testfixtures.NewRosterRepo()
	repo.ErrCreateShifts = boom
	if _, err := NewGenerateSchedule(repo).Execute(context.Background(), GenerateScheduleInput{
		StartDate: "2025-08-11", EndDate: "2025-08-11",
		StartTime: "09:00", EndTime: "17:00",
		EmployeeIDs: []string{"e"},
	}); !errors.Is(err, boom) {
		t.Errorf("insert error not propagated: %v", err)
	}
}

func TestGenerateAllDaysOffInsertsNothing(t *testing.T) {
	repo := testfixtures.NewRosterRepo()
	repo.AddDayOff("emp-a", "2025-08-11")
	repo.AddDayOff("emp-a", "2025-08-12")

	count, err := NewGenerateSchedule(repo).Execute(context.Background(), GenerateScheduleInput{
		StartDate:   "2025-08-11",
		EndDate:     "2025-08-12",
		StartTime:   "09:00",
		EndTime:     "17:00",
		EmployeeIDs: []string{"emp-a"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if len(repo.Shifts) != 0 {
		t.Errorf("shifts created: %d", len(repo.Shifts))
	}
}

func TestMonthBounds(t *testing.T) {
	start, end, err := MonthBounds("2025-08")
	if err != nil {
		t.Fatalf("MonthBounds: %v", err)
	}
	if start != "2025-08-01" || end != "2025-08-31" {
		t.Errorf("bounds = %q..%q", start, end)
	}

	_, _, err = MonthBounds("2025/08")
	be, ok := httperr.AsBusiness(err)
	if !ok || be.Code != "invalid_month" {
		t.Errorf("err = %v, want invalid_month", err)
	}
}
