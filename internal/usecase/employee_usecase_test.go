package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"resto-backend/internal/apperror"
	"resto-backend/internal/dbtest"
	"resto-backend/internal/model"
	"resto-backend/internal/repository"
)

func uintPtr(v uint) *uint { return &v }

func TestEmployeeUsecase_CreateHashesPassword(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewEmployeeRepository(dbtest.Open(t))
	uc := NewEmployeeUsecase(repo)

	_, err := uc.Create(ctx, EmployeeInput{})
	assert.True(t, apperror.HasCode(err, apperror.CodeMissingData))

	emp, err := uc.Create(ctx, EmployeeInput{FullName: strPtr("Ann Lee"), Password: strPtr("s3cret")})
	require.NoError(t, err)
	assert.True(t, emp.IsFeatured)
	require.NotEmpty(t, emp.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte("s3cret")))
	require.NotNil(t, emp.UserID, "password accounts get a token subject")
	assert.NotEmpty(t, *emp.UserID)
}

func TestEmployeeUsecase_Fire(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewEmployeeRepository(dbtest.Open(t))
	uc := NewEmployeeUsecase(repo)
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	emp, err := uc.Create(ctx, EmployeeInput{FullName: strPtr("Ann Lee")})
	require.NoError(t, err)

	fired, err := uc.Fire(ctx, emp.ID)
	require.NoError(t, err)
	assert.False(t, fired.IsFeatured)
	require.NotNil(t, fired.FiredAt)
	assert.True(t, fired.FiredAt.Equal(fixed))

	_, err = uc.Fire(ctx, 999)
	assert.Equal(t, 404, apperror.Status(err))
}

func TestEmployeeUsecase_ProfileUpsert(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := repository.NewEmployeeRepository(db)
	uc := NewEmployeeUsecase(repo)

	for _, name := range []string{"Cook", "Admin"} {
		require.NoError(t, repository.NewRoleRepository(db).Create(ctx, &model.Role{Name: name}))
	}

	profile, err := uc.Profile(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, profile)

	_, err = uc.SaveProfile(ctx, "user-1", EmployeeInput{})
	assert.True(t, apperror.HasCode(err, apperror.CodeMissingData))

	created, err := uc.SaveProfile(ctx, "user-1", EmployeeInput{FullName: strPtr("Ann Lee"), RoleID: uintPtr(1)})
	require.NoError(t, err)
	require.NotNil(t, created.UserID)
	assert.Equal(t, "user-1", *created.UserID)
	require.NotNil(t, created.RoleID)
	assert.Equal(t, uint(1), *created.RoleID)

	updated, err := uc.SaveProfile(ctx, "user-1", EmployeeInput{Age: func() *int { v := 31; return &v }(), RoleID: uintPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 31, updated.Age)
	require.NotNil(t, updated.RoleID)
	assert.Equal(t, uint(1), *updated.RoleID, "role cannot be changed through the profile")

	_, err = uc.Profile(ctx, " ")
	assert.True(t, apperror.HasCode(err, apperror.CodeMissingID))
}

func TestEmployeeUsecase_ListPages(t *testing.T) {
	ctx := context.Background()
	uc := NewEmployeeUsecase(repository.NewEmployeeRepository(dbtest.Open(t)))
	for _, name := range []string{"A", "B", "C"} {
		_, err := uc.Create(ctx, EmployeeInput{FullName: strPtr(name)})
		require.NoError(t, err)
	}

	page, err := uc.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 3, page.Total)

	_, err = uc.List(ctx, 3, 2)
	assert.True(t, apperror.HasCode(err, apperror.CodePageNotFound))
}
