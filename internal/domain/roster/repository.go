package roster

import (
	"context"
	"errors"

	"github.com/lacantina/turnos-api/internal/models"
)

// ErrProfileNotFound signals a missing profile; callers can tell it apart
// from storage failures.
var ErrProfileNotFound = errors.New("profile not found")

type Repository interface {
	// -------- Profiles --------
	ListProfiles(
		ctx context.Context,
	) ([]models.Profile, error)

	GetProfile(
		ctx context.Context,
		id string,
	) (*models.Profile, error)

	GetProfileByEmail(
		ctx context.Context,
		email string,
	) (*models.Profile, error)

	SaveProfile(
		ctx context.Context,
		p *models.Profile,
	) error

	// -------- Shifts --------
	UpsertShift(
		ctx context.Context,
		shift *models.Shift,
	) error

	CreateShifts(
		ctx context.Context,
		shifts []models.Shift,
	) error

	DeleteShift(
		ctx context.Context,
		employeeID string,
		date string,
	) error

	DeleteShiftsInRange(
		ctx context.Context,
		employeeIDs []string,
		start string,
		end string,
	) error

	ListShiftsForEmployee(
		ctx context.Context,
		employeeID string,
		start string,
		end string,
	) ([]models.Shift, error)

	ListShiftsInRange(
		ctx context.Context,
		start string,
		end string,
	) ([]models.Shift, error)

	// -------- Days off --------
	HasDayOff(
		ctx context.Context,
		employeeID string,
		date string,
	) (bool, error)

	// CreateDayOff must treat a duplicate (employee, date) as a no-op.
	CreateDayOff(
		ctx context.Context,
		employeeID string,
		date string,
	) error

	DeleteDayOff(
		ctx context.Context,
		employeeID string,
		date string,
	) error

	ListDaysOffForEmployees(
		ctx context.Context,
		employeeIDs []string,
		start string,
		end string,
	) ([]models.DayOff, error)

	ListDaysOffInRange(
		ctx context.Context,
		start string,
		end string,
	) ([]models.DayOff, error)

	ReplaceDaysOffInRange(
		ctx context.Context,
		employeeID string,
		start string,
		end string,
		dates []string,
	) (int, error)
}
