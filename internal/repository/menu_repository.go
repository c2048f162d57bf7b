package repository

import (
	"context"

	"gorm.io/gorm"

	"resto-backend/internal/apperror"
	"resto-backend/internal/model"
)

type IngredientRepository interface {
	// Page returns one page of ingredients and the total row count.
	Page(ctx context.Context, offset, limit int) ([]model.Ingredient, int64, error)
	GetByID(ctx context.Context, id uint) (*model.Ingredient, error)
	Create(ctx context.Context, ing *model.Ingredient) error
	Update(ctx context.Context, id uint, patch map[string]any) (*model.Ingredient, error)
	Delete(ctx context.Context, id uint) error
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db}
}

const ingredientCtx = "ingredients"

func (r *ingredientRepository) Page(ctx context.Context, offset, limit int) ([]model.Ingredient, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Ingredient{}).Count(&total).Error; err != nil {
		return nil, 0, wrap(err, ingredientCtx, "Page")
	}
	items := []model.Ingredient{}
	if err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, wrap(err, ingredientCtx, "Page")
	}
	return items, total, nil
}

func (r *ingredientRepository) GetByID(ctx context.Context, id uint) (*model.Ingredient, error) {
	ing, err := findByID[model.Ingredient](ctx, r.db, id)
	if err != nil {
		return nil, wrap(err, ingredientCtx, "GetByID", apperror.WithResource(id))
	}
	return ing, nil
}

func (r *ingredientRepository) Create(ctx context.Context, ing *model.Ingredient) error {
	ing.StampCreated(now())
	if err := r.db.WithContext(ctx).Create(ing).Error; err != nil {
		return wrap(err, ingredientCtx, "Create", apperror.WithInput(ing))
	}
	return nil
}

func (r *ingredientRepository) Update(ctx context.Context, id uint, patch map[string]any) (*model.Ingredient, error) {
	ing, err := patchByID[model.Ingredient](ctx, r.db, id, patch)
	if err != nil {
		return nil, wrap(err, ingredientCtx, "Update", apperror.WithResource(id), apperror.WithInput(patch))
	}
	return ing, nil
}

func (r *ingredientRepository) Delete(ctx context.Context, id uint) error {
	if err := deleteByID[model.Ingredient](ctx, r.db, id); err != nil {
		return wrap(err, ingredientCtx, "Delete", apperror.WithResource(id))
	}
	return nil
}

type DishRepository interface {
	Page(ctx context.Context, offset, limit int) ([]model.Dish, int64, error)
	GetByID(ctx context.Context, id uint) (*model.Dish, error)
	Create(ctx context.Context, dish *model.Dish) error
	Update(ctx context.Context, id uint, patch map[string]any) (*model.Dish, error)
	Delete(ctx context.Context, id uint) error
	Categories(ctx context.Context) ([]model.Category, error)
}

type dishRepository struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db}
}

const dishCtx = "dishes"

func (r *dishRepository) Page(ctx context.Context, offset, limit int) ([]model.Dish, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Dish{}).Count(&total).Error; err != nil {
		return nil, 0, wrap(err, dishCtx, "Page")
	}
	items := []model.Dish{}
	err := r.db.WithContext(ctx).Preload("Category").Order("id").Offset(offset).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, 0, wrap(err, dishCtx, "Page")
	}
	return items, total, nil
}

func (r *dishRepository) GetByID(ctx context.Context, id uint) (*model.Dish, error) {
	dish, err := findByID[model.Dish](ctx, r.db, id, "Category")
	if err != nil {
		return nil, wrap(err, dishCtx, "GetByID", apperror.WithResource(id))
	}
	return dish, nil
}

func (r *dishRepository) Create(ctx context.Context, dish *model.Dish) error {
	dish.StampCreated(now())
	if err := r.db.WithContext(ctx).Omit("Category").Create(dish).Error; err != nil {
		return wrap(err, dishCtx, "Create", apperror.WithInput(dish))
	}
	return nil
}

func (r *dishRepository) Update(ctx context.Context, id uint, patch map[string]any) (*model.Dish, error) {
	dish, err := patchByID[model.Dish](ctx, r.db, id, patch, "Category")
	if err != nil {
		return nil, wrap(err, dishCtx, "Update", apperror.WithResource(id), apperror.WithInput(patch))
	}
	return dish, nil
}

func (r *dishRepository) Delete(ctx context.Context, id uint) error {
	if err := deleteByID[model.Dish](ctx, r.db, id); err != nil {
		return wrap(err, dishCtx, "Delete", apperror.WithResource(id))
	}
	return nil
}

func (r *dishRepository) Categories(ctx context.Context) ([]model.Category, error) {
	cats := []model.Category{}
	if err := r.db.WithContext(ctx).Order("name").Find(&cats).Error; err != nil {
		return nil, wrap(err, "categories", "Categories")
	}
	return cats, nil
}
