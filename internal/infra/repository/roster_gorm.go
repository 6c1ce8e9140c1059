package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/lacantina/turnos-api/internal/domain/roster"
	"github.com/lacantina/turnos-api/internal/models"
)

type RosterGormRepository struct {
	db *gorm.DB
}

func NewRosterGormRepository(db *gorm.DB) *RosterGormRepository {
	return &RosterGormRepository{db: db}
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *RosterGormRepository) ListProfiles(
	ctx context.Context,
) ([]models.Profile, error) {

	var profiles []models.Profile
	if err := r.db.WithContext(ctx).
		Order("full_name ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *RosterGormRepository) GetProfile(
	ctx context.Context,
	id string,
) (*models.Profile, error) {

	var profile models.Profile
	if err := r.db.WithContext(ctx).
		First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *RosterGormRepository) GetProfileByEmail(
	ctx context.Context,
	email string,
) (*models.Profile, error) {

	var profile models.Profile
	if err := r.db.WithContext(ctx).
		First(&profile, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *RosterGormRepository) SaveProfile(
	ctx context.Context,
	p *models.Profile,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "role", "job_role", "updated_at",
			}),
		}).
		Create(p).Error
}

// --------------------------------------------------
// Shifts
// --------------------------------------------------

func (r *RosterGormRepository) UpsertShift(
	ctx context.Context,
	shift *models.Shift,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"start_time", "end_time", "notes", "updated_at",
			}),
		}).
		Create(shift).Error
}

func (r *RosterGormRepository) CreateShifts(
	ctx context.Context,
	shifts []models.Shift,
) error {
	if len(shifts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		CreateInBatches(shifts, 500).Error
}

func (r *RosterGormRepository) DeleteShift(
	ctx context.Context,
	employeeID string,
	date string,
) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		Delete(&models.Shift{}).Error
}

func (r *RosterGormRepository) DeleteShiftsInRange(
	ctx context.Context,
	employeeIDs []string,
	start string,
	end string,
) error {
	return r.db.WithContext(ctx).
		Where("employee_id IN ? AND date >= ? AND date <= ?", employeeIDs, start, end).
		Delete(&models.Shift{}).Error
}

func (r *RosterGormRepository) ListShiftsForEmployee(
	ctx context.Context,
	employeeID string,
	start string,
	end string,
) ([]models.Shift, error) {

	var shifts []models.Shift
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date <= ?", employeeID, start, end).
		Order("date ASC").
		Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *RosterGormRepository) ListShiftsInRange(
	ctx context.Context,
	start string,
	end string,
) ([]models.Shift, error) {

	var shifts []models.Shift
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// --------------------------------------------------
// Days off
// --------------------------------------------------

func (r *RosterGormRepository) HasDayOff(
	ctx context.Context,
	employeeID string,
	date string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DayOff{}).
		Where("employee_id = ? AND date = ?", employeeID, date).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RosterGormRepository) CreateDayOff(
	ctx context.Context,
	employeeID string,
	date string,
) error {

	err := r.db.WithContext(ctx).
		Create(&models.DayOff{EmployeeID: employeeID, Date: date}).Error

	if err != nil && isUniqueViolation(err) {
		return nil
	}
	return err
}

func (r *RosterGormRepository) DeleteDayOff(
	ctx context.Context,
	employeeID string,
	date string,
) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		Delete(&models.DayOff{}).Error
}

func (r *RosterGormRepository) ListDaysOffForEmployees(
	ctx context.Context,
	employeeIDs []string,
	start string,
	end string,
) ([]models.DayOff, error) {

	var offs []models.DayOff
	if err := r.db.WithContext(ctx).
		Where("employee_id IN ? AND date >= ? AND date <= ?", employeeIDs, start, end).
		Order("date ASC").
		Find(&offs).Error; err != nil {
		return nil, err
	}
	return offs, nil
}

func (r *RosterGormRepository) ListDaysOffInRange(
	ctx context.Context,
	start string,
	end string,
) ([]models.DayOff, error) {

	var offs []models.DayOff
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&offs).Error; err != nil {
		return nil, err
	}
	return offs, nil
}

func (r *RosterGormRepository) ReplaceDaysOffInRange(
	ctx context.Context,
	employeeID string,
	start string,
	end string,
	dates []string,
) (int, error) {

	inserted := 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("employee_id = ? AND date >= ? AND date <= ?", employeeID, start, end).
			Delete(&models.DayOff{}).Error; err != nil {
			return err
		}

		if len(dates) == 0 {
			return nil
		}

		offs := make([]models.DayOff, 0, len(dates))
		for _, d := range dates {
			offs = append(offs, models.DayOff{EmployeeID: employeeID, Date: d})
		}

		if err := tx.Create(&offs).Error; err != nil {
			return err
		}

		inserted = len(offs)
		return nil
	})

	return inserted, err
}

// isUniqueViolation matches SQLSTATE 23505 (and gorm's translated form) so
// duplicate-key inserts can be treated as idempotent no-ops.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// Compile-time check
var _ domain.Repository = (*RosterGormRepository)(nil)
