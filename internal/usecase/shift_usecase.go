package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"resto-backend/internal/apperror"
	"resto-backend/internal/model"
	"resto-backend/internal/repository"
)

type ShiftInput struct {
	ShiftDate *string          `json:"shift_date"`
	Profit    *decimal.Decimal `json:"profit"`
	StartedAt *time.Time       `json:"started_at"`
	AdminID   *string          `json:"admin_id"`
}

func (in ShiftInput) patch() map[string]any {
	p := map[string]any{}
	if in.Profit != nil {
		p["profit"] = *in.Profit
	}
	if in.StartedAt != nil {
		p["started_at"] = *in.StartedAt
	}
	if in.AdminID != nil {
		p["admin_id"] = *in.AdminID
	}
	return p
}

type ShiftUsecase struct {
	repo repository.ShiftRepository
	now  func() time.Time
}

func NewShiftUsecase(repo repository.ShiftRepository) *ShiftUsecase {
	return &ShiftUsecase{repo: repo, now: time.Now}
}

func validDate(date string) error {
	if strings.TrimSpace(date) == "" {
		return apperror.New(apperror.CodeMissingID, "shift date is required")
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return apperror.Newf(apperror.CodeInvalidData, "shift date %q is not a YYYY-MM-DD date", date)
	}
	return nil
}

// List returns shifts between the optional start and end dates.
func (u *ShiftUsecase) List(ctx context.Context, start, end string) ([]model.Shift, error) {
	for _, d := range []string{start, end} {
		if d == "" {
			continue
		}
		if err := validDate(d); err != nil {
			return nil, apperror.Tag(err, "ListShifts")
		}
	}
	shifts, err := u.repo.GetRange(ctx, start, end)
	return shifts, apperror.Tag(err, "ListShifts")
}

func (u *ShiftUsecase) Get(ctx context.Context, date string) (*model.Shift, error) {
	if err := validDate(date); err != nil {
		return nil, apperror.Tag(err, "GetShift")
	}
	shift, err := u.repo.GetByDate(ctx, date)
	return shift, apperror.Tag(err, "GetShift")
}

// Create records the shift; adminID is the caller and is used when the body names no admin.
func (u *ShiftUsecase) Create(ctx context.Context, adminID string, in ShiftInput) (*model.Shift, error) {
	if in.ShiftDate == nil {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "shift_date is required"), "CreateShift")
	}
	if err := validDate(*in.ShiftDate); err != nil {
		return nil, apperror.Tag(err, "CreateShift")
	}
	shift := &model.Shift{ShiftDate: *in.ShiftDate, StartedAt: u.now()}
	if in.Profit != nil {
		shift.Profit = *in.Profit
	}
	if in.StartedAt != nil {
		shift.StartedAt = *in.StartedAt
	}
	switch {
	case in.AdminID != nil:
		shift.AdminID = in.AdminID
	case adminID != "":
		shift.AdminID = &adminID
	}
	if err := u.repo.Create(ctx, shift); err != nil {
		return nil, apperror.Tag(err, "CreateShift")
	}
	return shift, nil
}

func (u *ShiftUsecase) Update(ctx context.Context, date string, in ShiftInput) (*model.Shift, error) {
	if err := validDate(date); err != nil {
		return nil, apperror.Tag(err, "UpdateShift")
	}
	patch := in.patch()
	if len(patch) == 0 {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "nothing to update"), "UpdateShift")
	}
	shift, err := u.repo.Update(ctx, date, patch)
	return shift, apperror.Tag(err, "UpdateShift")
}

func (u *ShiftUsecase) Delete(ctx context.Context, date string) error {
	if err := validDate(date); err != nil {
		return apperror.Tag(err, "DeleteShift")
	}
	return apperror.Tag(u.repo.Delete(ctx, date), "DeleteShift")
}
