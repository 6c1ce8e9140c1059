package schedule

import (
	"context"
	"testing"

	"github.com/lacantina/turnos-api/internal/httperr"
	"github.com/lacantina/turnos-api/internal/testfixtures"
)

func TestReplaceWeekDaysOff(t *testing.T) {
	repo := testfixtures.NewRosterRepo()
	repo.AddDayOff("emp-a", "2025-08-11")
	repo.AddDayOff("emp-a", "2025-08-13")
	// Another week: must survive.
	repo.AddDayOff("emp-a", "2025-08-20")
	// Another employee, same week: must survive.
	repo.AddDayOff("emp-b", "2025-08-13")

	count, err := NewReplaceWeekDaysOff(repo).Execute(context.Background(), ReplaceWeekDaysOffInput{
		EmployeeID: "emp-a",
		WeekStart:  "2025-08-11",
		WeekEnd:    "2025-08-17",
		Dates:      []string{"2025-08-15", "2025-08-16"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	ctx := context.Background()
	for _, d := range []string{"2025-08-15", "2025-08-16"} {
		if has, _ := repo.HasDayOff(ctx, "emp-a", d); !has {
			t.Errorf("missing new franco %s", d)
		}
	}
	for _, d := range []string{"2025-08-11", "2025-08-13"} {
		if has, _ := repo.HasDayOff(ctx, "emp-a", d); has {
			t.Errorf("old franco %s survived the replace", d)
		}
	}
	if has, _ := repo.HasDayOff(ctx, "emp-a", "2025-08-20"); !has {
		t.Error("franco outside the week was deleted")
	}
	if has, _ := repo.HasDayOff(ctx, "emp-b", "2025-08-13"); !has {
		t.Error("other employee's franco was deleted")
	}
}

func TestReplaceWeekDaysOffEmptyListClearsWeek(t *testing.T) {
	repo := testfixtures.NewRosterRepo()
	repo.AddDayOff("emp-a", "2025-08-12")

	count, err := NewReplaceWeekDaysOff(repo).Execute(context.Background(), ReplaceWeekDaysOffInput{
		EmployeeID: "emp-a",
		WeekStart:  "2025-08-11",
		WeekEnd:    "2025-08-17",
		Dates:      []string{},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if has, _ := repo.HasDayOff(context.Background(), "emp-a", "2025-08-12"); has {
		t.Error("franco survived an empty replace")
	}
}

func TestReplaceWeekDaysOffDedupes(t *testing.T) {
	repo := testfixtures.NewRosterRepo()

	count, err := NewReplaceWeekDaysOff(repo).Execute(context.Background(), ReplaceWeekDaysOffInput{
		EmployeeID: "emp-a",
		WeekStart:  "2025-08-11",
		WeekEnd:    "2025-08-17",
		Dates:      []string{"2025-08-12", "2025-08-12"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestReplaceWeekDaysOffValidation(t *testing.T) {
	cases := []struct {
		name string
		in   ReplaceWeekDaysOffInput
		code string
	}{
		{"missing employee", ReplaceWeekDaysOffInput{WeekStart: "2025-08-11", WeekEnd: "2025-08-17", Dates: []string{}}, "invalid_request"},
		{"bad week", ReplaceWeekDaysOffInput{EmployeeID: "e", WeekStart: "lunes", WeekEnd: "2025-08-17", Dates: []string{}}, "invalid_range"},
		{"nil dates", ReplaceWeekDaysOffInput{EmployeeID: "e", WeekStart: "2025-08-11", WeekEnd: "2025-08-17"}, "invalid_dates"},
		{"malformed date", ReplaceWeekDaysOffInput{EmployeeID: "e", WeekStart: "2025-08-11", WeekEnd: "2025-08-17", Dates: []string{"12-08"}}, "invalid_dates"},
		{"date outside week", ReplaceWeekDaysOffInput{EmployeeID: "e", WeekStart: "2025-08-11", WeekEnd: "2025-08-17", Dates: []string{"2025-08-18"}}, "invalid_dates"},
		{"date before week", ReplaceWeekDaysOffInput{EmployeeID: "e", WeekStart: "2025-08-11", WeekEnd: "2025-08-17", Dates: []string{"2025-08-10"}}, "invalid_dates"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := testfixtures.NewRosterRepo()
			repo.AddDayOff("e", "2025-08-12")

			_, err := NewReplaceWeekDaysOff(repo).Execute(context.Background(), tc.in)
			if !httperr.IsBusiness(err, tc.code) {
				t.Errorf("err = %v, want %s", err, tc.code)
			}
			if len(repo.DaysOff) != 1 {
				t.Error("repo mutated on invalid input")
			}
		})
	}
}
