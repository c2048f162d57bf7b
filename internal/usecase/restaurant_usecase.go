package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"resto-backend/internal/apperror"
	"resto-backend/internal/model"
	"resto-backend/internal/pagination"
	"resto-backend/internal/repository"
)

type RestaurantInput struct {
	Address            *string          `json:"address"`
	EmployeesCount     *int             `json:"employees_count"`
	Budget             *decimal.Decimal `json:"budget"`
	StartConstruction  *time.Time       `json:"start_construction"`
	FinishConstruction *time.Time       `json:"finish_construction"`
}

func (in RestaurantInput) patch() map[string]any {
	p := map[string]any{}
	if in.Address != nil {
		p["address"] = strings.TrimSpace(*in.Address)
	}
	if in.EmployeesCount != nil {
		p["employees_count"] = *in.EmployeesCount
	}
	if in.Budget != nil {
		p["budget"] = *in.Budget
	}
	if in.StartConstruction != nil {
		p["start_construction"] = *in.StartConstruction
	}
	if in.FinishConstruction != nil {
		p["finish_construction"] = *in.FinishConstruction
	}
	return p
}

type RestaurantUsecase struct {
	repo repository.RestaurantRepository
}

func NewRestaurantUsecase(repo repository.RestaurantRepository) *RestaurantUsecase {
	return &RestaurantUsecase{repo: repo}
}

func (u *RestaurantUsecase) List(ctx context.Context, page, limit int) (pagination.Page[model.RestaurantLocation], error) {
	locs, err := u.repo.GetAll(ctx)
	if err != nil {
		return pagination.Page[model.RestaurantLocation]{}, apperror.Tag(err, "ListRestaurants")
	}
	out, err := paginate(locs, page, limit)
	return out, apperror.Tag(err, "ListRestaurants")
}

func (u *RestaurantUsecase) Get(ctx context.Context, id uint) (*model.RestaurantLocation, error) {
	if err := requireID(id, "restaurant"); err != nil {
		return nil, apperror.Tag(err, "GetRestaurant")
	}
	loc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Tag(err, "GetRestaurant")
	}
	if loc == nil {
		return nil, apperror.Tag(apperror.Newf(apperror.CodeNotFound, "restaurant %d not found", id), "GetRestaurant")
	}
	return loc, nil
}

func (u *RestaurantUsecase) Create(ctx context.Context, in RestaurantInput) (*model.RestaurantLocation, error) {
	if blank(in.Address) {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "address is required"), "CreateRestaurant")
	}
	loc := &model.RestaurantLocation{
		Address:            strings.TrimSpace(*in.Address),
		StartConstruction:  in.StartConstruction,
		FinishConstruction: in.FinishConstruction,
	}
	if in.EmployeesCount != nil {
		loc.EmployeesCount = *in.EmployeesCount
	}
	if in.Budget != nil {
		loc.Budget = *in.Budget
	}
	if err := u.repo.Create(ctx, loc); err != nil {
		return nil, apperror.Tag(err, "CreateRestaurant")
	}
	return loc, nil
}

func (u *RestaurantUsecase) Update(ctx context.Context, id uint, in RestaurantInput) (*model.RestaurantLocation, error) {
	if err := requireID(id, "restaurant"); err != nil {
		return nil, apperror.Tag(err, "UpdateRestaurant")
	}
	patch := in.patch()
	if len(patch) == 0 {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "nothing to update"), "UpdateRestaurant")
	}
	if in.Address != nil && blank(in.Address) {
		return nil, apperror.Tag(apperror.New(apperror.CodeInvalidData, "address cannot be empty"), "UpdateRestaurant")
	}
	loc, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, apperror.Tag(err, "UpdateRestaurant")
	}
	return loc, nil
}
