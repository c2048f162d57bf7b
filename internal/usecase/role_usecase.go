package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"resto-backend/internal/apperror"
	"resto-backend/internal/cache"
	"resto-backend/internal/model"
	"resto-backend/internal/repository"
)

type RoleInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	ShiftPay    *decimal.Decimal `json:"shift_pay"`
}

func (in RoleInput) patch() map[string]any {
	p := map[string]any{}
	if in.Name != nil {
		p["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p["description"] = *in.Description
	}
	if in.ShiftPay != nil {
		p["shift_pay"] = *in.ShiftPay
	}
	return p
}

type RoleUsecase struct {
	repo  repository.RoleRepository
	weeks *cache.ScheduleCache
}

func NewRoleUsecase(repo repository.RoleRepository) *RoleUsecase {
	return &RoleUsecase{repo: repo}
}

// WithWeekCache makes role writes drop every cached schedule week.
func (u *RoleUsecase) WithWeekCache(c *cache.ScheduleCache) *RoleUsecase {
	u.weeks = c
	return u
}

func (u *RoleUsecase) List(ctx context.Context) ([]model.Role, error) {
	roles, err := u.repo.GetAll(ctx)
	return roles, apperror.Tag(err, "ListRoles")
}

func (u *RoleUsecase) Get(ctx context.Context, id uint) (*model.Role, error) {
	if err := requireID(id, "role"); err != nil {
		return nil, apperror.Tag(err, "GetRole")
	}
	role, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Tag(err, "GetRole")
	}
	if role == nil {
		return nil, apperror.Tag(apperror.Newf(apperror.CodeNotFound, "role %d not found", id), "GetRole")
	}
	return role, nil
}

func (u *RoleUsecase) Create(ctx context.Context, in RoleInput) (*model.Role, error) {
	if blank(in.Name) {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "name is required"), "CreateRole")
	}
	role := &model.Role{Name: strings.TrimSpace(*in.Name)}
	if in.Description != nil {
		role.Description = *in.Description
	}
	if in.ShiftPay != nil {
		role.ShiftPay = *in.ShiftPay
	}
	if err := u.repo.Create(ctx, role); err != nil {
		return nil, apperror.Tag(err, "CreateRole")
	}
	u.weeks.InvalidateAll(ctx)
	return role, nil
}

func (u *RoleUsecase) Update(ctx context.Context, id uint, in RoleInput) (*model.Role, error) {
	if err := requireID(id, "role"); err != nil {
		return nil, apperror.Tag(err, "UpdateRole")
	}
	patch := in.patch()
	if len(patch) == 0 {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "nothing to update"), "UpdateRole")
	}
	if in.Name != nil && blank(in.Name) {
		return nil, apperror.Tag(apperror.New(apperror.CodeInvalidData, "name cannot be empty"), "UpdateRole")
	}
	role, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, apperror.Tag(err, "UpdateRole")
	}
	u.weeks.InvalidateAll(ctx)
	return role, nil
}

func (u *RoleUsecase) Delete(ctx context.Context, id uint) error {
	if err := requireID(id, "role"); err != nil {
		return apperror.Tag(err, "DeleteRole")
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return apperror.Tag(err, "DeleteRole")
	}
	u.weeks.InvalidateAll(ctx)
	return nil
}
