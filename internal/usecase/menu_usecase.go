package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"resto-backend/internal/apperror"
	"resto-backend/internal/model"
	"resto-backend/internal/pagination"
	"resto-backend/internal/repository"
)

type IngredientInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *decimal.Decimal `json:"quantity"`
}

func (in IngredientInput) patch() map[string]any {
	p := map[string]any{}
	if in.Name != nil {
		p["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p["description"] = *in.Description
	}
	if in.Price != nil {
		p["price"] = *in.Price
	}
	if in.Quantity != nil {
		p["quantity"] = *in.Quantity
	}
	return p
}

type IngredientUsecase struct {
	repo repository.IngredientRepository
}

func NewIngredientUsecase(repo repository.IngredientRepository) *IngredientUsecase {
	return &IngredientUsecase{repo: repo}
}

// List pages in the store; Total is the full row count.
func (u *IngredientUsecase) List(ctx context.Context, page, limit int) (pagination.Page[model.Ingredient], error) {
	return storePage(ctx, page, limit, u.repo.Page, "ListIngredients")
}

func (u *IngredientUsecase) Get(ctx context.Context, id uint) (*model.Ingredient, error) {
	if err := requireID(id, "ingredient"); err != nil {
		return nil, apperror.Tag(err, "GetIngredient")
	}
	ing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Tag(err, "GetIngredient")
	}
	if ing == nil {
		return nil, apperror.Tag(apperror.Newf(apperror.CodeNotFound, "ingredient %d not found", id), "GetIngredient")
	}
	return ing, nil
}

func (u *IngredientUsecase) Create(ctx context.Context, in IngredientInput) (*model.Ingredient, error) {
	if blank(in.Name) {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "name is required"), "CreateIngredient")
	}
	if negative(in.Price) || negative(in.Quantity) {
		return nil, apperror.Tag(apperror.New(apperror.CodeInvalidData, "price and quantity cannot be negative"), "CreateIngredient")
	}
	ing := &model.Ingredient{Name: strings.TrimSpace(*in.Name)}
	if in.Description != nil {
		ing.Description = *in.Description
	}
	if in.Price != nil {
		ing.Price = *in.Price
	}
	if in.Quantity != nil {
		ing.Quantity = *in.Quantity
	}
	if err := u.repo.Create(ctx, ing); err != nil {
		return nil, apperror.Tag(err, "CreateIngredient")
	}
	return ing, nil
}

func (u *IngredientUsecase) Update(ctx context.Context, id uint, in IngredientInput) (*model.Ingredient, error) {
	if err := requireID(id, "ingredient"); err != nil {
		return nil, apperror.Tag(err, "UpdateIngredient")
	}
	patch := in.patch()
	if len(patch) == 0 {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "nothing to update"), "UpdateIngredient")
	}
	if (in.Name != nil && blank(in.Name)) || negative(in.Price) || negative(in.Quantity) {
		return nil, apperror.Tag(apperror.New(apperror.CodeInvalidData, "invalid ingredient data"), "UpdateIngredient")
	}
	ing, err := u.repo.Update(ctx, id, patch)
	return ing, apperror.Tag(err, "UpdateIngredient")
}

func (u *IngredientUsecase) Delete(ctx context.Context, id uint) error {
	if err := requireID(id, "ingredient"); err != nil {
		return apperror.Tag(err, "DeleteIngredient")
	}
	return apperror.Tag(u.repo.Delete(ctx, id), "DeleteIngredient")
}

type DishInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Rating      *float64         `json:"rating"`
	CategoryID  *uint            `json:"category_id"`
}

func (in DishInput) patch() map[string]any {
	p := map[string]any{}
	if in.Name != nil {
		p["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p["description"] = *in.Description
	}
	if in.Price != nil {
		p["price"] = *in.Price
	}
	if in.Rating != nil {
		p["rating"] = *in.Rating
	}
	if in.CategoryID != nil {
		p["category_id"] = *in.CategoryID
	}
	return p
}

type DishUsecase struct {
	repo repository.DishRepository
}

func NewDishUsecase(repo repository.DishRepository) *DishUsecase {
	return &DishUsecase{repo: repo}
}

func (u *DishUsecase) List(ctx context.Context, page, limit int) (pagination.Page[model.Dish], error) {
	return storePage(ctx, page, limit, u.repo.Page, "ListDishes")
}

func (u *DishUsecase) Get(ctx context.Context, id uint) (*model.Dish, error) {
	if err := requireID(id, "dish"); err != nil {
		return nil, apperror.Tag(err, "GetDish")
	}
	dish, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Tag(err, "GetDish")
	}
	if dish == nil {
		return nil, apperror.Tag(apperror.Newf(apperror.CodeNotFound, "dish %d not found", id), "GetDish")
	}
	return dish, nil
}

func (u *DishUsecase) Create(ctx context.Context, in DishInput) (*model.Dish, error) {
	if blank(in.Name) {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "name is required"), "CreateDish")
	}
	if negative(in.Price) || badRating(in.Rating) {
		return nil, apperror.Tag(apperror.New(apperror.CodeInvalidData, "invalid dish data"), "CreateDish")
	}
	dish := &model.Dish{Name: strings.TrimSpace(*in.Name), Rating: in.Rating, CategoryID: in.CategoryID}
	if in.Description != nil {
		dish.Description = *in.Description
	}
	if in.Price != nil {
		dish.Price = *in.Price
	}
	if err := u.repo.Create(ctx, dish); err != nil {
		return nil, apperror.Tag(err, "CreateDish")
	}
	return dish, nil
}

func (u *DishUsecase) Update(ctx context.Context, id uint, in DishInput) (*model.Dish, error) {
	if err := requireID(id, "dish"); err != nil {
		return nil, apperror.Tag(err, "UpdateDish")
	}
	patch := in.patch()
	if len(patch) == 0 {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "nothing to update"), "UpdateDish")
	}
	if (in.Name != nil && blank(in.Name)) || negative(in.Price) || badRating(in.Rating) {
		return nil, apperror.Tag(apperror.New(apperror.CodeInvalidData, "invalid dish data"), "UpdateDish")
	}
	dish, err := u.repo.Update(ctx, id, patch)
	return dish, apperror.Tag(err, "UpdateDish")
}

func (u *DishUsecase) Delete(ctx context.Context, id uint) error {
	if err := requireID(id, "dish"); err != nil {
		return apperror.Tag(err, "DeleteDish")
	}
	return apperror.Tag(u.repo.Delete(ctx, id), "DeleteDish")
}

func (u *DishUsecase) Categories(ctx context.Context) ([]model.Category, error) {
	cats, err := u.repo.Categories(ctx)
	return cats, apperror.Tag(err, "ListCategories")
}

// storePage pages in the store and overwrites Total with the counted rows.
func storePage[T any](ctx context.Context, page, limit int, fetch func(context.Context, int, int) ([]T, int64, error), op string) (pagination.Page[T], error) {
	if err := checkPage(page, limit); err != nil {
		return pagination.Page[T]{}, apperror.Tag(err, op)
	}
	items, total, err := fetch(ctx, pagination.Offset(page, limit), limit)
	if err != nil {
		return pagination.Page[T]{}, apperror.Tag(err, op)
	}
	if err := pageExists(page, limit, total); err != nil {
		return pagination.Page[T]{}, apperror.Tag(err, op)
	}
	out := pagination.Paginate(items, 1, limit)
	out.Page = page
	out.Total = int(total)
	return out, nil
}

func negative(d *decimal.Decimal) bool {
	return d != nil && d.IsNegative()
}

func badRating(r *float64) bool {
	return r != nil && (*r < 0 || *r > 5)
}
