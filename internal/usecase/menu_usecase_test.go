package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto-backend/internal/apperror"
	"resto-backend/internal/dbtest"
	"resto-backend/internal/repository"
)

func TestIngredientUsecase_ListUsesStoreCount(t *testing.T) {
	ctx := context.Background()
	uc := NewIngredientUsecase(repository.NewIngredientRepository(dbtest.Open(t)))

	for _, name := range []string{"Salt", "Pepper", "Basil"} {
		_, err := uc.Create(ctx, IngredientInput{Name: strPtr(name)})
		require.NoError(t, err)
	}

	page, err := uc.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Basil", page.Data[0].Name)

	_, err = uc.List(ctx, 5, 2)
	assert.True(t, apperror.HasCode(err, apperror.CodePageNotFound))

	_, err = uc.List(ctx, 1, 0)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidPagination))
}

func TestIngredientUsecase_Validation(t *testing.T) {
	ctx := context.Background()
	uc := NewIngredientUsecase(repository.NewIngredientRepository(dbtest.Open(t)))

	_, err := uc.Create(ctx, IngredientInput{})
	assert.True(t, apperror.HasCode(err, apperror.CodeMissingData))

	neg := decimal.NewFromInt(-1)
	_, err = uc.Create(ctx, IngredientInput{Name: strPtr("Salt"), Price: &neg})
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidData))

	_, err = uc.Update(ctx, 1, IngredientInput{})
	assert.True(t, apperror.HasCode(err, apperror.CodeMissingData))

	assert.Equal(t, 404, apperror.Status(uc.Delete(ctx, 42)))
}

func TestDishUsecase_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := NewDishUsecase(repository.NewDishRepository(dbtest.Open(t)))

	price := decimal.RequireFromString("9.90")
	dish, err := uc.Create(ctx, DishInput{Name: strPtr("Soup"), Price: &price})
	require.NoError(t, err)

	rating := 6.0
	_, err = uc.Update(ctx, dish.ID, DishInput{Rating: &rating})
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidData))

	rating = 4.5
	updated, err := uc.Update(ctx, dish.ID, DishInput{Rating: &rating})
	require.NoError(t, err)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 4.5, *updated.Rating)

	got, err := uc.Get(ctx, dish.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(price))

	require.NoError(t, uc.Delete(ctx, dish.ID))
	_, err = uc.Get(ctx, dish.ID)
	assert.True(t, apperror.HasCode(err, apperror.CodeNotFound))

	cats, err := uc.Categories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}
