package repository

import (
	"context"

	"gorm.io/gorm"

	"resto-backend/internal/apperror"
	"resto-backend/internal/model"
)

type RoleRepository interface {
	GetAll(ctx context.Context) ([]model.Role, error)
	GetByID(ctx context.Context, id uint) (*model.Role, error)
	Create(ctx context.Context, role *model.Role) error
	Update(ctx context.Context, id uint, patch map[string]any) (*model.Role, error)
	Delete(ctx context.Context, id uint) error
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db}
}

const roleCtx = "roles"

func (r *roleRepository) GetAll(ctx context.Context) ([]model.Role, error) {
	roles := []model.Role{}
	if err := r.db.WithContext(ctx).Order("id").Find(&roles).Error; err != nil {
		return nil, wrap(err, roleCtx, "GetAll")
	}
	return roles, nil
}

func (r *roleRepository) GetByID(ctx context.Context, id uint) (*model.Role, error) {
	role, err := findByID[model.Role](ctx, r.db, id)
	if err != nil {
		return nil, wrap(err, roleCtx, "GetByID", apperror.WithResource(id))
	}
	return role, nil
}

func (r *roleRepository) Create(ctx context.Context, role *model.Role) error {
	role.StampCreated(now())
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return wrap(err, roleCtx, "Create", apperror.WithInput(role))
	}
	return nil
}

func (r *roleRepository) Update(ctx context.Context, id uint, patch map[string]any) (*model.Role, error) {
	role, err := patchByID[model.Role](ctx, r.db, id, patch)
	if err != nil {
		return nil, wrap(err, roleCtx, "Update", apperror.WithResource(id), apperror.WithInput(patch))
	}
	return role, nil
}

func (r *roleRepository) Delete(ctx context.Context, id uint) error {
	if err := deleteByID[model.Role](ctx, r.db, id); err != nil {
		return wrap(err, roleCtx, "Delete", apperror.WithResource(id))
	}
	return nil
}
