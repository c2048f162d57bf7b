package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resto-backend/internal/apperror"
	"resto-backend/internal/model"
)

type ShiftRepository interface {
	GetRange(ctx context.Context, start, end string) ([]model.Shift, error)
	GetByDate(ctx context.Context, date string) (*model.Shift, error)
	Create(ctx context.Context, shift *model.Shift) error
	Update(ctx context.Context, date string, patch map[string]any) (*model.Shift, error)
	Delete(ctx context.Context, date string) error
	// EnsureExists inserts a default shift for date unless one is already there.
	EnsureExists(ctx context.Context, date string) error
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db}
}

const shiftCtx = "shifts"

func (r *shiftRepository) GetRange(ctx context.Context, start, end string) ([]model.Shift, error) {
	shifts := []model.Shift{}
	q := r.db.WithContext(ctx).Order("shift_date")
	if start != "" {
		q = q.Where("shift_date >= ?", start)
	}
	if end != "" {
		q = q.Where("shift_date <= ?", end)
	}
	if err := q.Find(&shifts).Error; err != nil {
		return nil, wrap(err, shiftCtx, "GetRange", apperror.WithInput(map[string]string{"start": start, "end": end}))
	}
	return shifts, nil
}

// GetByDate returns a NOT_FOUND error, not nil, when the date has no shift.
func (r *shiftRepository) GetByDate(ctx context.Context, date string) (*model.Shift, error) {
	var shift model.Shift
	if err := r.db.WithContext(ctx).Where("shift_date = ?", date).First(&shift).Error; err != nil {
		return nil, wrap(err, shiftCtx, "GetByDate", apperror.WithResource(date))
	}
	return &shift, nil
}

func (r *shiftRepository) Create(ctx context.Context, shift *model.Shift) error {
	shift.StampCreated(now())
	if err := r.db.WithContext(ctx).Create(shift).Error; err != nil {
		return wrap(err, shiftCtx, "Create", apperror.WithInput(shift))
	}
	return nil
}

func (r *shiftRepository) Update(ctx context.Context, date string, patch map[string]any) (*model.Shift, error) {
	err := r.db.WithContext(ctx).Model(&model.Shift{}).Where("shift_date = ?", date).Updates(model.StampPatch(patch, now())).Error
	if err != nil {
		return nil, wrap(err, shiftCtx, "Update", apperror.WithResource(date), apperror.WithInput(patch))
	}
	var shift model.Shift
	if err := r.db.WithContext(ctx).Where("shift_date = ?", date).First(&shift).Error; err != nil {
		return nil, wrap(err, shiftCtx, "Update", apperror.WithResource(date))
	}
	return &shift, nil
}

func (r *shiftRepository) Delete(ctx context.Context, date string) error {
	res := r.db.WithContext(ctx).Where("shift_date = ?", date).Delete(&model.Shift{})
	if res.Error != nil {
		return wrap(res.Error, shiftCtx, "Delete", apperror.WithResource(date))
	}
	if res.RowsAffected == 0 {
		return wrap(gorm.ErrRecordNotFound, shiftCtx, "Delete", apperror.WithResource(date))
	}
	return nil
}

func (r *shiftRepository) EnsureExists(ctx context.Context, date string) error {
	ts := now()
	shift := model.Shift{ShiftDate: date, Profit: decimal.Zero, StartedAt: ts}
	shift.StampCreated(ts)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&shift).Error
	if err != nil {
		return wrap(err, shiftCtx, "EnsureExists", apperror.WithResource(date))
	}
	return nil
}
