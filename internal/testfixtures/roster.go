package testfixtures

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	domain "github.com/lacantina/turnos-api/internal/domain/roster"
	"github.com/lacantina/turnos-api/internal/models"
)

var profileCounter uint64

// ProfileOption configures a generated profile fixture.
type ProfileOption func(*models.Profile)

// NewProfileFixture returns a deterministic employee profile with optional
// overrides.
func NewProfileFixture(opts ...ProfileOption) models.Profile {
	idx := atomic.AddUint64(&profileCounter, 1)
	name := fmt.Sprintf("Empleado %03d", idx)
	p := models.Profile{
		ID:       fmt.Sprintf("emp-%03d", idx),
		FullName: &name,
		Email:    fmt.Sprintf("emp-%03d@example.com", idx),
		Role:     "employee",
		JobRole:  "camarero",
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func WithProfileID(id string) ProfileOption {
	return func(p *models.Profile) { p.ID = id }
}

func WithFullName(name string) ProfileOption {
	return func(p *models.Profile) { p.FullName = &name }
}

func WithRole(role string) ProfileOption {
	return func(p *models.Profile) { p.Role = role }
}

func WithJobRole(jobRole string) ProfileOption {
	return func(p *models.Profile) { p.JobRole = jobRole }
}

// ----------------------------- In-memory repo -----------------------------

// RosterRepo is an in-memory roster.Repository for use case tests. Shifts
// and days off are keyed "employee|date", mirroring the composite unique
// indexes of the real schema. Err* fields inject failures.
type RosterRepo struct {
	mu sync.Mutex

	Profiles map[string]models.Profile
	Shifts   map[string]models.Shift
	DaysOff  map[string]models.DayOff

	nextShiftID uint

	ErrCreateShifts      error
	ErrDeleteShift       error
	ErrDeleteInRange     error
	ErrCreateDayOff      error
	ErrListDaysOff       error
	ErrGetProfileByEmail error
}

func NewRosterRepo() *RosterRepo {
	return &RosterRepo{
		Profiles: make(map[string]models.Profile),
		Shifts:   make(map[string]models.Shift),
		DaysOff:  make(map[string]models.DayOff),
	}
}

func rosterKey(employeeID, date string) string {
	return employeeID + "|" + date
}

// AddProfiles seeds employees.
func (r *RosterRepo) AddProfiles(profiles ...models.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range profiles {
		r.Profiles[p.ID] = p
	}
}

// AddShift seeds one shift.
func (r *RosterRepo) AddShift(s models.Shift) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextShiftID++
	s.ID = r.nextShiftID
	r.Shifts[rosterKey(s.EmployeeID, s.Date)] = s
}

// AddDayOff seeds one franco.
func (r *RosterRepo) AddDayOff(employeeID, date string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.DaysOff[rosterKey(employeeID, date)] = models.DayOff{EmployeeID: employeeID, Date: date}
}

// ShiftDates lists the dates one employee is scheduled on, sorted.
func (r *RosterRepo) ShiftDates(employeeID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, s := range r.Shifts {
		if s.EmployeeID == employeeID {
			out = append(out, s.Date)
		}
	}
	sort.Strings(out)
	return out
}

// --------------------------------------------------
// roster.Repository
// --------------------------------------------------

func (r *RosterRepo) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Profile, 0, len(r.Profiles))
	for _, p := range r.Profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *RosterRepo) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.Profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (r *RosterRepo) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	if r.ErrGetProfileByEmail != nil {
		return nil, r.ErrGetProfileByEmail
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.Profiles {
		if p.Email == email {
			out := p
			return &out, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *RosterRepo) SaveProfile(ctx context.Context, p *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Profiles[p.ID] = *p
	return nil
}

func (r *RosterRepo) UpsertShift(ctx context.Context, shift *models.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := rosterKey(shift.EmployeeID, shift.Date)
	if existing, ok := r.Shifts[k]; ok {
		shift.ID = existing.ID
	} else {
		r.nextShiftID++
		shift.ID = r.nextShiftID
	}
	r.Shifts[k] = *shift
	return nil
}

func (r *RosterRepo) CreateShifts(ctx context.Context, shifts []models.Shift) error {
	if r.ErrCreateShifts != nil {
		return r.ErrCreateShifts
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range shifts {
		k := rosterKey(s.EmployeeID, s.Date)
		if _, dup := r.Shifts[k]; dup {
			return fmt.Errorf("duplicate shift for %s", k)
		}
		r.nextShiftID++
		s.ID = r.nextShiftID
		r.Shifts[k] = s
	}
	return nil
}

func (r *RosterRepo) DeleteShift(ctx context.Context, employeeID, date string) error {
	if r.ErrDeleteShift != nil {
		return r.ErrDeleteShift
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.Shifts, rosterKey(employeeID, date))
	return nil
}

func (r *RosterRepo) DeleteShiftsInRange(ctx context.Context, employeeIDs []string, start, end string) error {
	if r.ErrDeleteInRange != nil {
		return r.ErrDeleteInRange
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make(map[string]struct{}, len(employeeIDs))
	for _, id := range employeeIDs {
		ids[id] = struct{}{}
	}
	for k, s := range r.Shifts {
		if _, ok := ids[s.EmployeeID]; ok && s.Date >= start && s.Date <= end {
			delete(r.Shifts, k)
		}
	}
	return nil
}

func (r *RosterRepo) ListShiftsForEmployee(ctx context.Context, employeeID, start, end string) ([]models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Shift
	for _, s := range r.Shifts {
		if s.EmployeeID == employeeID && s.Date >= start && s.Date <= end {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *RosterRepo) ListShiftsInRange(ctx context.Context, start, end string) ([]models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Shift
	for _, s := range r.Shifts {
		if s.Date >= start && s.Date <= end {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *RosterRepo) HasDayOff(ctx context.Context, employeeID, date string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.DaysOff[rosterKey(employeeID, date)]
	return ok, nil
}

func (r *RosterRepo) CreateDayOff(ctx context.Context, employeeID, date string) error {
	if r.ErrCreateDayOff != nil {
		return r.ErrCreateDayOff
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	k := rosterKey(employeeID, date)
	if _, dup := r.DaysOff[k]; dup {
		return nil
	}
	r.DaysOff[k] = models.DayOff{EmployeeID: employeeID, Date: date}
	return nil
}

func (r *RosterRepo) DeleteDayOff(ctx context.Context, employeeID, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.DaysOff, rosterKey(employeeID, date))
	return nil
}

func (r *RosterRepo) ListDaysOffForEmployees(ctx context.Context, employeeIDs []string, start, end string) ([]models.DayOff, error) {
	if r.ErrListDaysOff != nil {
		return nil, r.ErrListDaysOff
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make(map[string]struct{}, len(employeeIDs))
	for _, id := range employeeIDs {
		ids[id] = struct{}{}
	}
	var out []models.DayOff
	for _, o := range r.DaysOff {
		if _, ok := ids[o.EmployeeID]; ok && o.Date >= start && o.Date <= end {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *RosterRepo) ListDaysOffInRange(ctx context.Context, start, end string) ([]models.DayOff, error) {
	if r.ErrListDaysOff != nil {
		return nil, r.ErrListDaysOff
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.DayOff
	for _, o := range r.DaysOff {
		if o.Date >= start && o.Date <= end {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *RosterRepo) ReplaceDaysOffInRange(ctx context.Context, employeeID, start, end string, dates []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, o := range r.DaysOff {
		if o.EmployeeID == employeeID && o.Date >= start && o.Date <= end {
			delete(r.DaysOff, k)
		}
	}
	for _, d := range dates {
		r.DaysOff[rosterKey(employeeID, d)] = models.DayOff{EmployeeID: employeeID, Date: d}
	}
	return len(dates), nil
}

// Compile-time check
var _ domain.Repository = (*RosterRepo)(nil)
