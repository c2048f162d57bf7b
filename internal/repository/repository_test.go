package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto-backend/internal/apperror"
	"resto-backend/internal/dbtest"
	"resto-backend/internal/model"
)

func uintPtr(v uint) *uint { return &v }
func strPtr(v string) *string { return &v }

func TestRestaurantRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRestaurantRepository(dbtest.Open(t))

	loc := &model.RestaurantLocation{Address: "1 Main St", Budget: decimal.RequireFromString("1500.50")}
	require.NoError(t, repo.Create(ctx, loc))
	assert.NotZero(t, loc.ID)
	assert.False(t, loc.CreatedAt.IsZero())
	assert.Equal(t, loc.CreatedAt, loc.UpdatedAt)

	got, err := repo.GetByID(ctx, loc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Budget.Equal(decimal.RequireFromString("1500.50")))

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	updated, err := repo.Update(ctx, loc.ID, map[string]any{"address": "2 Side St"})
	require.NoError(t, err)
	assert.Equal(t, "2 Side St", updated.Address)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	_, err = repo.Update(ctx, 999, map[string]any{"address": "nowhere"})
	assert.True(t, apperror.HasCode(err, apperror.CodeNotFound))
	assert.Equal(t, 404, apperror.Status(err))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRoleRepository_DuplicateNameConflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewRoleRepository(dbtest.Open(t))

	require.NoError(t, repo.Create(ctx, &model.Role{Name: "Cook"}))
	err := repo.Create(ctx, &model.Role{Name: "Cook"})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.Status(err))

	e, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.LayerRepository, e.Layer)
	assert.Equal(t, "Create", e.Operation)
	assert.Equal(t, "roles", e.Context)
	assert.NotNil(t, e.Input)
}

func TestRoleRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewRoleRepository(dbtest.Open(t))

	role := &model.Role{Name: "Server", ShiftPay: decimal.NewFromInt(90)}
	require.NoError(t, repo.Create(ctx, role))
	require.NoError(t, repo.Delete(ctx, role.ID))

	err := repo.Delete(ctx, role.ID)
	assert.True(t, apperror.HasCode(err, apperror.CodeNotFound))
}

func TestEmployeeRepository_LookupsAndFire(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	roles := NewRoleRepository(db)
	locs := NewRestaurantRepository(db)
	repo := NewEmployeeRepository(db)

	cook := &model.Role{Name: "Cook"}
	require.NoError(t, roles.Create(ctx, cook))
	loc := &model.RestaurantLocation{Address: "1 Main St"}
	require.NoError(t, locs.Create(ctx, loc))

	emp := &model.Employee{
		UserID:     strPtr("user-1"),
		FullName:   "Ann Lee",
		Email:      "ann@resto.test",
		IsFeatured: true,
		RoleID:     uintPtr(cook.ID),
		LocationID: uintPtr(loc.ID),
	}
	require.NoError(t, repo.Create(ctx, emp))
	require.NoError(t, repo.Create(ctx, &model.Employee{FullName: "Bob Ray"}))

	byUser, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, byUser)
	require.NotNil(t, byUser.Role)
	assert.Equal(t, "Cook", byUser.Role.Name)

	none, err := repo.GetByUserID(ctx, "user-2")
	require.NoError(t, err)
	assert.Nil(t, none)

	byEmail, err := repo.GetByEmail(ctx, "Ann@Resto.test")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, emp.ID, byEmail.ID)

	none, err = repo.GetByEmail(ctx, "nobody@resto.test")
	require.NoError(t, err)
	assert.Nil(t, none)

	atLoc, err := repo.GetByLocation(ctx, loc.ID)
	require.NoError(t, err)
	require.Len(t, atLoc, 1)
	assert.Equal(t, "Ann Lee", atLoc[0].FullName)

	firedAt := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	fired, err := repo.Fire(ctx, emp.ID, firedAt)
	require.NoError(t, err)
	assert.False(t, fired.IsFeatured)
	require.NotNil(t, fired.FiredAt)
	assert.True(t, fired.FiredAt.Equal(firedAt))

	still, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestIngredientRepository_Page(t *testing.T) {
	ctx := context.Background()
	repo := NewIngredientRepository(dbtest.Open(t))

	for _, name := range []string{"Salt", "Pepper", "Basil", "Flour", "Eggs"} {
		require.NoError(t, repo.Create(ctx, &model.Ingredient{Name: name, Price: decimal.NewFromInt(1)}))
	}

	items, total, err := repo.Page(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, items, 2)
	assert.Equal(t, "Basil", items[0].Name)

	items, _, err = repo.Page(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDishRepository_CategoriesAndPreload(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewDishRepository(db)

	mains := &model.Category{Name: "Mains"}
	require.NoError(t, db.Create(mains).Error)
	require.NoError(t, db.Create(&model.Category{Name: "Desserts"}).Error)

	dish := &model.Dish{Name: "Risotto", Price: decimal.RequireFromString("12.50"), CategoryID: uintPtr(mains.ID)}
	require.NoError(t, repo.Create(ctx, dish))

	got, err := repo.GetByID(ctx, dish.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Mains", got.Category.Name)

	cats, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Desserts", cats[0].Name)

	require.NoError(t, repo.Delete(ctx, dish.ID))
	gone, err := repo.GetByID(ctx, dish.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestShiftRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewShiftRepository(dbtest.Open(t))

	_, err := repo.GetByDate(ctx, "2024-01-01")
	assert.True(t, apperror.HasCode(err, apperror.CodeNotFound))

	require.NoError(t, repo.EnsureExists(ctx, "2024-01-01"))
	require.NoError(t, repo.EnsureExists(ctx, "2024-01-01"))
	first, err := repo.GetByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.True(t, first.Profit.IsZero())

	require.NoError(t, repo.Create(ctx, &model.Shift{ShiftDate: "2024-01-03", Profit: decimal.NewFromInt(300)}))
	err = repo.Create(ctx, &model.Shift{ShiftDate: "2024-01-03"})
	assert.Equal(t, 409, apperror.Status(err))

	shifts, err := repo.GetRange(ctx, "2024-01-01", "2024-01-02")
	require.NoError(t, err)
	assert.Len(t, shifts, 1)

	updated, err := repo.Update(ctx, "2024-01-03", map[string]any{"profit": decimal.NewFromInt(450)})
	require.NoError(t, err)
	assert.True(t, updated.Profit.Equal(decimal.NewFromInt(450)))

	_, err = repo.Update(ctx, "2024-02-01", map[string]any{"profit": decimal.Zero})
	assert.True(t, apperror.HasCode(err, apperror.CodeNotFound))

	require.NoError(t, repo.Delete(ctx, "2024-01-03"))
	assert.True(t, apperror.HasCode(repo.Delete(ctx, "2024-01-03"), apperror.CodeNotFound))
}

func TestScheduleRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewScheduleRepository(db)

	cook := &model.Role{Name: "Cook"}
	require.NoError(t, NewRoleRepository(db).Create(ctx, cook))
	emp := &model.Employee{FullName: "Ann Lee", RoleID: uintPtr(cook.ID)}
	require.NoError(t, NewEmployeeRepository(db).Create(ctx, emp))
	for _, addr := range []string{"1 Main St", "2 Side St"} {
		require.NoError(t, NewRestaurantRepository(db).Create(ctx, &model.RestaurantLocation{Address: addr}))
	}

	key := AssignmentKey{EmployeeID: emp.ID, ShiftDate: "2024-01-01", LocationID: 1}
	found, err := repo.ForEmployees(ctx, []uint{emp.ID}, key.ShiftDate, key.ShiftDate)
	require.NoError(t, err)
	assert.Empty(t, found)

	require.NoError(t, repo.Create(ctx, &model.EmployeeSchedule{EmployeeID: emp.ID, ShiftDate: "2024-01-01", LocationID: 1}))
	require.NoError(t, repo.Create(ctx, &model.EmployeeSchedule{EmployeeID: emp.ID, ShiftDate: "2024-01-09", LocationID: 1}))
	require.NoError(t, repo.Create(ctx, &model.EmployeeSchedule{EmployeeID: emp.ID, ShiftDate: "2024-01-02", LocationID: 2}))

	err = repo.Create(ctx, &model.EmployeeSchedule{EmployeeID: emp.ID, ShiftDate: "2024-01-01", LocationID: 1})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))

	rows, err := repo.GetRange(ctx, 1, "2024-01-01", "2024-01-07")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Employee)
	require.NotNil(t, rows[0].Employee.Role)
	assert.Equal(t, "Cook", rows[0].Employee.Role.Name)

	mine, err := repo.ForEmployees(ctx, []uint{emp.ID}, "2024-01-01", "2024-01-07")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, uint(1), mine[0].LocationID)
	assert.Equal(t, uint(2), mine[1].LocationID)
	require.NotNil(t, mine[0].Employee)
	assert.Equal(t, "Ann Lee", mine[0].Employee.FullName)

	none, err := repo.ForEmployees(ctx, nil, "2024-01-01", "2024-01-07")
	require.NoError(t, err)
	assert.Empty(t, none)

	n, err := repo.Delete(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(ctx, key)
	require.NoError(t, err)
	assert.Zero(t, n)
}
