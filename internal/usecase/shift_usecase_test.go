package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto-backend/internal/apperror"
	"resto-backend/internal/dbtest"
	"resto-backend/internal/repository"
)

func TestShiftUsecase(t *testing.T) {
	ctx := context.Background()
	uc := NewShiftUsecase(repository.NewShiftRepository(dbtest.Open(t)))
	started := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return started }

	_, err := uc.Create(ctx, "admin-1", ShiftInput{})
	assert.True(t, apperror.HasCode(err, apperror.CodeMissingData))

	_, err = uc.Create(ctx, "admin-1", ShiftInput{ShiftDate: strPtr("2024/01/01")})
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidData))

	profit := decimal.NewFromInt(1200)
	shift, err := uc.Create(ctx, "admin-1", ShiftInput{ShiftDate: strPtr("2024-01-01"), Profit: &profit})
	require.NoError(t, err)
	require.NotNil(t, shift.AdminID)
	assert.Equal(t, "admin-1", *shift.AdminID)
	assert.True(t, shift.StartedAt.Equal(started))

	_, err = uc.Create(ctx, "admin-1", ShiftInput{ShiftDate: strPtr("2024-01-01")})
	assert.Equal(t, 409, apperror.Status(err))

	got, err := uc.Get(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.True(t, got.Profit.Equal(profit))

	_, err = uc.Get(ctx, "2024-01-02")
	assert.Equal(t, 404, apperror.Status(err))

	list, err := uc.List(ctx, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.List(ctx, "yesterday", "")
	assert.Equal(t, 400, apperror.Status(err))

	_, err = uc.Update(ctx, "2024-01-01", ShiftInput{})
	assert.True(t, apperror.HasCode(err, apperror.CodeMissingData))

	more := decimal.NewFromInt(1500)
	updated, err := uc.Update(ctx, "2024-01-01", ShiftInput{Profit: &more})
	require.NoError(t, err)
	assert.True(t, updated.Profit.Equal(more))

	require.NoError(t, uc.Delete(ctx, "2024-01-01"))
	assert.Equal(t, 404, apperror.Status(uc.Delete(ctx, "2024-01-01")))
}
