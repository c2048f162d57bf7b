package repository

import (
	"context"

	"gorm.io/gorm"

	"resto-backend/internal/apperror"
	"resto-backend/internal/model"
)

// AssignmentKey identifies one employees_schedule row.
type AssignmentKey struct {
	EmployeeID uint   `json:"employee_id"`
	ShiftDate  string `json:"shift_date"`
	LocationID uint   `json:"location_id"`
}

type ScheduleRepository interface {
	// GetRange returns the location's assignments dated start..end with
	// Employee and Employee.Role loaded.
	GetRange(ctx context.Context, locationID uint, start, end string) ([]model.EmployeeSchedule, error)
	// ForEmployees returns the employees' assignments dated start..end at
	// every location, with Employee loaded.
	ForEmployees(ctx context.Context, employeeIDs []uint, start, end string) ([]model.EmployeeSchedule, error)
	Create(ctx context.Context, a *model.EmployeeSchedule) error
	// Delete reports how many rows matched; zero is not an error.
	Delete(ctx context.Context, key AssignmentKey) (int64, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db}
}

const scheduleCtx = "employees_schedule"

func (r *scheduleRepository) GetRange(ctx context.Context, locationID uint, start, end string) ([]model.EmployeeSchedule, error) {
	rows := []model.EmployeeSchedule{}
	err := r.db.WithContext(ctx).
		Preload("Employee.Role").
		Where("location_id = ? AND shift_date >= ? AND shift_date <= ?", locationID, start, end).
		Order("shift_date").Order("employee_id").
		Find(&rows).Error
	if err != nil {
		return nil, wrap(err, scheduleCtx, "GetRange",
			apperror.WithInput(map[string]any{"locationId": locationID, "startDate": start, "endDate": end}))
	}
	return rows, nil
}

func (r *scheduleRepository) ForEmployees(ctx context.Context, employeeIDs []uint, start, end string) ([]model.EmployeeSchedule, error) {
	rows := []model.EmployeeSchedule{}
	if len(employeeIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id IN ? AND shift_date >= ? AND shift_date <= ?", employeeIDs, start, end).
		Order("shift_date").Order("employee_id").Order("location_id").
		Find(&rows).Error
	if err != nil {
		return nil, wrap(err, scheduleCtx, "ForEmployees",
			apperror.WithInput(map[string]any{"employeeIds": employeeIDs, "startDate": start, "endDate": end}))
	}
	return rows, nil
}

func (r *scheduleRepository) Create(ctx context.Context, a *model.EmployeeSchedule) error {
	a.StampCreated(now())
	if err := r.db.WithContext(ctx).Omit("Employee", "Location").Create(a).Error; err != nil {
		return wrap(err, scheduleCtx, "Create", apperror.WithInput(AssignmentKey{a.EmployeeID, a.ShiftDate, a.LocationID}))
	}
	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, key AssignmentKey) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("employee_id = ? AND shift_date = ? AND location_id = ?", key.EmployeeID, key.ShiftDate, key.LocationID).
		Delete(&model.EmployeeSchedule{})
	if res.Error != nil {
		return 0, wrap(res.Error, scheduleCtx, "Delete", apperror.WithInput(key))
	}
	return res.RowsAffected, nil
}
