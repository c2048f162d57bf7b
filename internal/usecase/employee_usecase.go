package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resto-backend/internal/apperror"
	"resto-backend/internal/cache"
	"resto-backend/internal/model"
	"resto-backend/internal/pagination"
	"resto-backend/internal/repository"
)

type EmployeeInput struct {
	UserID     *string `json:"user_id"`
	FullName   *string `json:"full_name"`
	Age        *int    `json:"age"`
	Email      *string `json:"email"`
	IsFeatured *bool   `json:"is_featured"`
	RoleID     *uint   `json:"role_id"`
	LocationID *uint   `json:"location_id"`
	// Password is only honoured on create.
	Password *string `json:"password"`
}

func (in EmployeeInput) patch() map[string]any {
	p := map[string]any{}
	if in.FullName != nil {
		p["full_name"] = strings.TrimSpace(*in.FullName)
	}
	if in.Age != nil {
		p["age"] = *in.Age
	}
	if in.Email != nil {
		p["email"] = strings.TrimSpace(*in.Email)
	}
	if in.IsFeatured != nil {
		p["is_featured"] = *in.IsFeatured
	}
	if in.RoleID != nil {
		p["role_id"] = *in.RoleID
	}
	if in.LocationID != nil {
		p["location_id"] = *in.LocationID
	}
	return p
}

func (in EmployeeInput) apply(emp *model.Employee) {
	if in.UserID != nil && strings.TrimSpace(*in.UserID) != "" {
		uid := strings.TrimSpace(*in.UserID)
		emp.UserID = &uid
	}
	if in.FullName != nil {
		emp.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Age != nil {
		emp.Age = *in.Age
	}
	if in.Email != nil {
		emp.Email = strings.TrimSpace(*in.Email)
	}
	if in.IsFeatured != nil {
		emp.IsFeatured = *in.IsFeatured
	}
	emp.RoleID = in.RoleID
	emp.LocationID = in.LocationID
}

func (in EmployeeInput) empty() bool {
	return blank(in.FullName) && blank(in.Email) && blank(in.UserID) &&
		in.Age == nil && in.IsFeatured == nil && in.RoleID == nil && in.LocationID == nil
}

type EmployeeUsecase struct {
	repo  repository.EmployeeRepository
	now   func() time.Time
	weeks *cache.ScheduleCache
}

func NewEmployeeUsecase(repo repository.EmployeeRepository) *EmployeeUsecase {
	return &EmployeeUsecase{repo: repo, now: time.Now}
}

// WithWeekCache makes employee writes drop every cached schedule week.
func (u *EmployeeUsecase) WithWeekCache(c *cache.ScheduleCache) *EmployeeUsecase {
	u.weeks = c
	return u
}

func (u *EmployeeUsecase) List(ctx context.Context, page, limit int) (pagination.Page[model.Employee], error) {
	emps, err := u.repo.GetAll(ctx)
	if err != nil {
		return pagination.Page[model.Employee]{}, apperror.Tag(err, "ListEmployees")
	}
	out, err := paginate(emps, page, limit)
	return out, apperror.Tag(err, "ListEmployees")
}

func (u *EmployeeUsecase) Get(ctx context.Context, id uint) (*model.Employee, error) {
	if err := requireID(id, "employee"); err != nil {
		return nil, apperror.Tag(err, "GetEmployee")
	}
	emp, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Tag(err, "GetEmployee")
	}
	if emp == nil {
		return nil, apperror.Tag(apperror.Newf(apperror.CodeNotFound, "employee %d not found", id), "GetEmployee")
	}
	return emp, nil
}

// Create is the administrator path: role and location are accepted.
func (u *EmployeeUsecase) Create(ctx context.Context, in EmployeeInput) (*model.Employee, error) {
	if in.empty() {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "employee data is required"), "CreateEmployee")
	}
	emp := &model.Employee{IsFeatured: true}
	in.apply(emp)
	if !blank(in.Password) {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.Tag(err, "CreateEmployee")
		}
		emp.PasswordHash = string(hash)
		if emp.UserID == nil {
			// password sign-in needs a token subject
			subject := uuid.NewString()
			emp.UserID = &subject
		}
	}
	if err := u.repo.Create(ctx, emp); err != nil {
		return nil, apperror.Tag(err, "CreateEmployee")
	}
	u.weeks.InvalidateAll(ctx)
	return emp, nil
}

func (u *EmployeeUsecase) Update(ctx context.Context, id uint, in EmployeeInput) (*model.Employee, error) {
	if err := requireID(id, "employee"); err != nil {
		return nil, apperror.Tag(err, "UpdateEmployee")
	}
	patch := in.patch()
	if len(patch) == 0 {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "nothing to update"), "UpdateEmployee")
	}
	emp, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, apperror.Tag(err, "UpdateEmployee")
	}
	u.weeks.InvalidateAll(ctx)
	return emp, nil
}

// Fire deactivates the employee; the record and its history stay.
func (u *EmployeeUsecase) Fire(ctx context.Context, id uint) (*model.Employee, error) {
	if err := requireID(id, "employee"); err != nil {
		return nil, apperror.Tag(err, "FireEmployee")
	}
	emp, err := u.repo.Fire(ctx, id, u.now())
	if err != nil {
		return nil, apperror.Tag(err, "FireEmployee")
	}
	u.weeks.InvalidateAll(ctx)
	return emp, nil
}

// Profile returns the caller's employee record, or nil before first setup.
func (u *EmployeeUsecase) Profile(ctx context.Context, userID string) (*model.Employee, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingID, "user id is required"), "GetProfile")
	}
	emp, err := u.repo.GetByUserID(ctx, userID)
	return emp, apperror.Tag(err, "GetProfile")
}

// SaveProfile creates the caller's record on first use. Later calls update it
// but never change the role.
func (u *EmployeeUsecase) SaveProfile(ctx context.Context, userID string, in EmployeeInput) (*model.Employee, error) {
	const op = "SaveProfile"
	if strings.TrimSpace(userID) == "" {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingID, "user id is required"), op)
	}
	existing, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Tag(err, op)
	}
	in.UserID = nil
	in.Password = nil
	if in.empty() {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "profile data is required"), op)
	}

	if existing == nil {
		in.UserID = &userID
		emp := &model.Employee{IsFeatured: true}
		in.apply(emp)
		if err := u.repo.Create(ctx, emp); err != nil {
			return nil, apperror.Tag(err, op)
		}
		u.weeks.InvalidateAll(ctx)
		return emp, nil
	}

	in.RoleID = nil
	patch := in.patch()
	if len(patch) == 0 {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "nothing to update"), op)
	}
	emp, err := u.repo.Update(ctx, existing.ID, patch)
	if err != nil {
		return nil, apperror.Tag(err, op)
	}
	u.weeks.InvalidateAll(ctx)
	return emp, nil
}
