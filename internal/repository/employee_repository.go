package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"resto-backend/internal/apperror"
	"resto-backend/internal/model"
)

type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, id uint) (*model.Employee, error)
	// GetByUserID looks an employee up by identity provider subject.
	GetByUserID(ctx context.Context, userID string) (*model.Employee, error)
	// GetByEmail is nil, nil when nobody uses the address.
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	GetByLocation(ctx context.Context, locationID uint) ([]model.Employee, error)
	Create(ctx context.Context, emp *model.Employee) error
	Update(ctx context.Context, id uint, patch map[string]any) (*model.Employee, error)
	// Fire clears is_featured and records when; the row is kept.
	Fire(ctx context.Context, id uint, at time.Time) (*model.Employee, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

const employeeCtx = "employees"

func (r *employeeRepository) GetAll(ctx context.Context) ([]model.Employee, error) {
	emps := []model.Employee{}
	err := r.db.WithContext(ctx).Preload("Role").Preload("Location").Order("id").Find(&emps).Error
	if err != nil {
		return nil, wrap(err, employeeCtx, "GetAll")
	}
	return emps, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id uint) (*model.Employee, error) {
	emp, err := findByID[model.Employee](ctx, r.db, id, "Role", "Location")
	if err != nil {
		return nil, wrap(err, employeeCtx, "GetByID", apperror.WithResource(id))
	}
	return emp, nil
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (*model.Employee, error) {
	var emps []model.Employee
	err := r.db.WithContext(ctx).Preload("Role").Where("user_id = ?", userID).Limit(1).Find(&emps).Error
	if err != nil {
		return nil, wrap(err, employeeCtx, "GetByUserID", apperror.WithResource(userID))
	}
	if len(emps) == 0 {
		return nil, nil
	}
	return &emps[0], nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var emps []model.Employee
	err := r.db.WithContext(ctx).Preload("Role").Where("LOWER(email) = LOWER(?)", email).Order("id").Limit(1).Find(&emps).Error
	if err != nil {
		return nil, wrap(err, employeeCtx, "GetByEmail")
	}
	if len(emps) == 0 {
		return nil, nil
	}
	return &emps[0], nil
}

func (r *employeeRepository) GetByLocation(ctx context.Context, locationID uint) ([]model.Employee, error) {
	emps := []model.Employee{}
	err := r.db.WithContext(ctx).Preload("Role").Where("location_id = ?", locationID).Order("full_name").Find(&emps).Error
	if err != nil {
		return nil, wrap(err, employeeCtx, "GetByLocation", apperror.WithResource(locationID))
	}
	return emps, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp *model.Employee) error {
	emp.StampCreated(now())
	if err := r.db.WithContext(ctx).Omit("Role", "Location").Create(emp).Error; err != nil {
		return wrap(err, employeeCtx, "Create", apperror.WithInput(emp))
	}
	return nil
}

func (r *employeeRepository) Update(ctx context.Context, id uint, patch map[string]any) (*model.Employee, error) {
	emp, err := patchByID[model.Employee](ctx, r.db, id, patch, "Role", "Location")
	if err != nil {
		return nil, wrap(err, employeeCtx, "Update", apperror.WithResource(id), apperror.WithInput(patch))
	}
	return emp, nil
}

func (r *employeeRepository) Fire(ctx context.Context, id uint, at time.Time) (*model.Employee, error) {
	patch := map[string]any{"is_featured": false, "fired_at": at}
	emp, err := patchByID[model.Employee](ctx, r.db, id, patch, "Role", "Location")
	if err != nil {
		return nil, wrap(err, employeeCtx, "Fire", apperror.WithResource(id))
	}
	return emp, nil
}
