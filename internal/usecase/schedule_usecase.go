package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"resto-backend/internal/apperror"
	"resto-backend/internal/cache"
	"resto-backend/internal/metrics"
	"resto-backend/internal/model"
	"resto-backend/internal/notify"
	"resto-backend/internal/repository"
	"resto-backend/internal/schedule"
)

type ScheduleDeps struct {
	Assignments repository.ScheduleRepository
	Roles       repository.RoleRepository
	Employees   repository.EmployeeRepository
	Locations   repository.RestaurantRepository
	Shifts      repository.ShiftRepository
	Cache       *cache.ScheduleCache
	Notifier    notify.Notifier
	Log         *zap.Logger
	// AdminRoleID is the one role allowed to change schedules.
	AdminRoleID uint
	MaxDays     int
}

type ScheduleUsecase struct {
	ScheduleDeps
}

func NewScheduleUsecase(deps ScheduleDeps) *ScheduleUsecase {
	if deps.Cache == nil {
		deps.Cache = cache.NewScheduleCache(nil, 0, nil)
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.Noop{}
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	return &ScheduleUsecase{ScheduleDeps: deps}
}

// WeekQuery selects a location's schedule over an inclusive date range.
type WeekQuery struct {
	LocationID uint
	StartDate  string
	EndDate    string
}

func (q WeekQuery) validate() error {
	if q.LocationID == 0 {
		return apperror.New(apperror.CodeMissingData, "locationId is required")
	}
	if strings.TrimSpace(q.StartDate) == "" || strings.TrimSpace(q.EndDate) == "" {
		return apperror.New(apperror.CodeMissingData, "startDate and endDate are required")
	}
	return nil
}

// Week computes role coverage and completion for every date in the query.
func (u *ScheduleUsecase) Week(ctx context.Context, q WeekQuery) (*model.ScheduleWeek, error) {
	const op = "GetScheduleWeek"
	if err := q.validate(); err != nil {
		return nil, apperror.Tag(err, op)
	}
	dates, err := schedule.DatesBetween(q.StartDate, q.EndDate, u.MaxDays)
	if err != nil {
		return nil, apperror.Tag(err, op)
	}
	if week, ok := u.Cache.GetWeek(ctx, q.LocationID, q.StartDate, q.EndDate); ok {
		return week, nil
	}

	var (
		roles       []model.Role
		assignments []model.EmployeeSchedule
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roles, err = u.Roles.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = u.Assignments.GetRange(gctx, q.LocationID, q.StartDate, q.EndDate)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperror.Tag(err, op)
	}

	week := schedule.BuildWeek(q.LocationID, dates, roles, assignments)
	u.Cache.PutWeek(ctx, &week)
	return &week, nil
}

// Validate reports per-day errors and warnings for the query range. Employees
// booked at another location on the same date are reported too.
func (u *ScheduleUsecase) Validate(ctx context.Context, q WeekQuery) (*model.ScheduleValidation, error) {
	week, err := u.Week(ctx, q)
	if err != nil {
		return nil, apperror.Tag(err, "ValidateSchedule")
	}
	seen := map[uint]bool{}
	var ids []uint
	for _, day := range week.Days {
		for _, a := range day.Employees {
			if !seen[a.EmployeeID] {
				seen[a.EmployeeID] = true
				ids = append(ids, a.EmployeeID)
			}
		}
	}
	elsewhere, err := u.Assignments.ForEmployees(ctx, ids, week.StartDate, week.EndDate)
	if err != nil {
		return nil, apperror.Tag(err, "ValidateSchedule")
	}
	v := schedule.ValidateWeek(week.Days, elsewhere)
	return &v, nil
}

func validKey(key repository.AssignmentKey) error {
	if key.EmployeeID == 0 || key.LocationID == 0 || strings.TrimSpace(key.ShiftDate) == "" {
		return apperror.New(apperror.CodeMissingData, "employee_id, shift_date and location_id are required")
	}
	return validDate(key.ShiftDate)
}

func duplicate(reason string) error {
	return apperror.New(apperror.CodeDuplicateAssignment, reason)
}

// Assign books the employee for the date at the location and makes sure the
// date has a shift. A second assignment with the same key is rejected.
func (u *ScheduleUsecase) Assign(ctx context.Context, key repository.AssignmentKey) (*model.EmployeeSchedule, error) {
	const op = "AssignEmployeeToShift"
	if err := validKey(key); err != nil {
		return nil, apperror.Tag(err, op)
	}

	taken, err := u.Assignments.ForEmployees(ctx, []uint{key.EmployeeID}, key.ShiftDate, key.ShiftDate)
	if err != nil {
		return nil, apperror.Tag(err, op)
	}
	if ok, reason := schedule.CanAssign(key.EmployeeID, key.ShiftDate, key.LocationID, taken); !ok {
		metrics.IncAssignment("duplicate")
		return nil, apperror.Tag(duplicate(reason), op)
	}

	a := &model.EmployeeSchedule{EmployeeID: key.EmployeeID, ShiftDate: key.ShiftDate, LocationID: key.LocationID}
	if err := u.Assignments.Create(ctx, a); err != nil {
		// Lost a race with a concurrent assign of the same key.
		if apperror.IsConflict(err) {
			metrics.IncAssignment("duplicate")
			return nil, apperror.Tag(duplicate(schedule.ReasonAlreadyAssigned), op)
		}
		metrics.IncAssignment("error")
		return nil, apperror.Tag(err, op)
	}
	u.Cache.InvalidateLocation(ctx, key.LocationID)

	if err := u.Shifts.EnsureExists(ctx, key.ShiftDate); err != nil {
		metrics.IncAssignment("error")
		return nil, apperror.Tag(err, op)
	}
	metrics.IncAssignment("created")
	u.Log.Info("employee assigned to shift",
		zap.Uint("employee_id", key.EmployeeID),
		zap.String("shift_date", key.ShiftDate),
		zap.Uint("location_id", key.LocationID))

	u.notifyAssigned(ctx, key)
	return a, nil
}

func (u *ScheduleUsecase) notifyAssigned(ctx context.Context, key repository.AssignmentKey) {
	emp, err := u.Employees.GetByID(ctx, key.EmployeeID)
	if err != nil || emp == nil {
		return
	}
	loc := emp.Location
	if loc == nil || loc.ID != key.LocationID {
		if loc, err = u.Locations.GetByID(ctx, key.LocationID); err != nil {
			loc = nil
		}
	}
	if err := u.Notifier.ShiftAssigned(emp, key.ShiftDate, loc); err != nil {
		u.Log.Warn("shift notification failed", zap.Error(err), zap.Uint("employee_id", key.EmployeeID))
	}
}

// Remove deletes the assignment. Removing one that does not exist succeeds.
func (u *ScheduleUsecase) Remove(ctx context.Context, key repository.AssignmentKey) error {
	const op = "RemoveEmployeeFromShift"
	if err := validKey(key); err != nil {
		return apperror.Tag(err, op)
	}
	n, err := u.Assignments.Delete(ctx, key)
	if err != nil {
		return apperror.Tag(err, op)
	}
	if n > 0 {
		metrics.IncRemoval()
		u.Cache.InvalidateLocation(ctx, key.LocationID)
	}
	return nil
}

func (u *ScheduleUsecase) EmployeesByLocation(ctx context.Context, locationID uint) ([]model.Employee, error) {
	if locationID == 0 {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "locationId is required"), "GetEmployeesByLocation")
	}
	emps, err := u.Employees.GetByLocation(ctx, locationID)
	return emps, apperror.Tag(err, "GetEmployeesByLocation")
}

func (u *ScheduleUsecase) ListRoles(ctx context.Context) ([]model.Role, error) {
	roles, err := u.Roles.GetAll(ctx)
	return roles, apperror.Tag(err, "GetRoles")
}

func (u *ScheduleUsecase) ListLocations(ctx context.Context) ([]model.RestaurantLocation, error) {
	locs, err := u.Locations.GetAll(ctx)
	return locs, apperror.Tag(err, "GetLocations")
}

// Permissions derives schedule rights from the caller's role. Everyone with a
// profile may view; only the admin role may change anything.
func (u *ScheduleUsecase) Permissions(ctx context.Context, userID string) (*model.SchedulePermissions, error) {
	const op = "ValidateSchedulePermissions"
	if strings.TrimSpace(userID) == "" {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingID, "user id is required"), op)
	}
	emp, err := u.Employees.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Tag(err, op)
	}
	if emp == nil {
		return nil, apperror.Tag(apperror.New(apperror.CodeProfileNotFound, "Employee record not found"), op)
	}

	isAdmin := emp.RoleID != nil && *emp.RoleID == u.AdminRoleID
	perms := &model.SchedulePermissions{
		CanView:   true,
		CanEdit:   isAdmin,
		CanDelete: isAdmin,
		CanCreate: isAdmin,
		IsAdmin:   isAdmin,
		RoleID:    emp.RoleID,
		RoleName:  "Unknown",
	}
	if emp.Role != nil {
		perms.RoleName = emp.Role.Name
	}
	return perms, nil
}
