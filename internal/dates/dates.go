package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/lacantina/turnos-api/internal/timezone"
)

const Layout = "2006-01-02"

// FormatYMD renders a date as "YYYY-MM-DD" using its own calendar fields.
func FormatYMD(t time.Time) string {
	return t.Format(Layout)
}

// ParseYMD parses "YYYY-MM-DD" anchored at local midnight.
func ParseYMD(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, timezone.Location(""))
}

// IsYMD reports whether s is a well-formed "YYYY-MM-DD" date.
func IsYMD(s string) bool {
	_, err := ParseYMD(s)
	return err == nil && len(s) == 10
}

// AddDays shifts a YMD string by n calendar days.
func AddDays(ymd string, n int) (string, error) {
	t, err := ParseYMD(ymd)
	if err != nil {
		return "", err
	}
	return FormatYMD(t.AddDate(0, 0, n)), nil
}

// DaysBetween enumerates every date in [start, end], both inclusive.
// An empty slice comes back when end precedes start.
func DaysBetween(start, end string) ([]string, error) {
	s, err := ParseYMD(start)
	if err != nil {
		return nil, err
	}
	e, err := ParseYMD(end)
	if err != nil {
		return nil, err
	}

	var days []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, FormatYMD(d))
	}
	return days, nil
}

// WeekDays returns the 7 consecutive dates starting at weekStart.
func WeekDays(weekStart string) ([]string, error) {
	s, err := ParseYMD(weekStart)
	if err != nil {
		return nil, err
	}

	days := make([]string, 7)
	for i := 0; i < 7; i++ {
		days[i] = FormatYMD(s.AddDate(0, 0, i))
	}
	return days, nil
}

// MonthBounds returns the first and last day of a "YYYY-MM" month.
func MonthBounds(month string) (string, string, error) {
	t, err := time.ParseInLocation("2006-01", month, timezone.Location(""))
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q: %w", month, err)
	}

	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return FormatYMD(first), FormatYMD(last), nil
}

var spanishWeekdays = [7]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

// HeaderLabel renders a date as a Spanish export column header, e.g.
// "Lunes 11".
func HeaderLabel(ymd string) string {
	t, err := ParseYMD(ymd)
	if err != nil {
		return ymd
	}
	return fmt.Sprintf("%s %02d", spanishWeekdays[int(t.Weekday())], t.Day())
}

// HHMM trims times like "09:00:00" down to "HH:MM".
func HHMM(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// IsHHMM reports whether s is a zero-padded "HH:MM" clock time.
func IsHHMM(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil && !strings.ContainsAny(s, " ")
}
