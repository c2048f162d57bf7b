package repository

import (
	"context"

	"gorm.io/gorm"

	"resto-backend/internal/apperror"
	"resto-backend/internal/model"
)

type RestaurantRepository interface {
	GetAll(ctx context.Context) ([]model.RestaurantLocation, error)
	GetByID(ctx context.Context, id uint) (*model.RestaurantLocation, error)
	Create(ctx context.Context, loc *model.RestaurantLocation) error
	Update(ctx context.Context, id uint, patch map[string]any) (*model.RestaurantLocation, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db}
}

const restaurantCtx = "restaurant_locations"

func (r *restaurantRepository) GetAll(ctx context.Context) ([]model.RestaurantLocation, error) {
	locs := []model.RestaurantLocation{}
	if err := r.db.WithContext(ctx).Order("id").Find(&locs).Error; err != nil {
		return nil, wrap(err, restaurantCtx, "GetAll")
	}
	return locs, nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id uint) (*model.RestaurantLocation, error) {
	loc, err := findByID[model.RestaurantLocation](ctx, r.db, id)
	if err != nil {
		return nil, wrap(err, restaurantCtx, "GetByID", apperror.WithResource(id))
	}
	return loc, nil
}

func (r *restaurantRepository) Create(ctx context.Context, loc *model.RestaurantLocation) error {
	loc.StampCreated(now())
	if err := r.db.WithContext(ctx).Create(loc).Error; err != nil {
		return wrap(err, restaurantCtx, "Create", apperror.WithInput(loc))
	}
	return nil
}

func (r *restaurantRepository) Update(ctx context.Context, id uint, patch map[string]any) (*model.RestaurantLocation, error) {
	loc, err := patchByID[model.RestaurantLocation](ctx, r.db, id, patch)
	if err != nil {
		return nil, wrap(err, restaurantCtx, "Update", apperror.WithResource(id), apperror.WithInput(patch))
	}
	return loc, nil
}
