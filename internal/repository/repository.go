package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"resto-backend/internal/apperror"
	"resto-backend/internal/model"
)

// now stamps created_at / updated_at.
var now = time.Now

// findByID returns nil, nil when no row matches.
func findByID[T any](ctx context.Context, db *gorm.DB, id uint, preload ...string) (*T, error) {
	q := db.WithContext(ctx)
	for _, p := range preload {
		q = q.Preload(p)
	}
	var rows []T
	if err := q.Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// patchByID applies patch plus updated_at and reloads the row.
// A missing row surfaces as gorm.ErrRecordNotFound.
func patchByID[T any](ctx context.Context, db *gorm.DB, id uint, patch map[string]any, preload ...string) (*T, error) {
	if err := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(model.StampPatch(patch, now())).Error; err != nil {
		return nil, err
	}
	row, err := findByID[T](ctx, db, id, preload...)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

// deleteByID reports gorm.ErrRecordNotFound when nothing was removed.
func deleteByID[T any](ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func wrap(err error, resource, operation string, opts ...apperror.StoreOption) error {
	return apperror.FromStore(err, resource, operation, opts...)
}
