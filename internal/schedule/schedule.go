// Package schedule derives role coverage and completion for a location's
// schedule from the role list and the stored assignments. Nothing here
// touches the store.
package schedule

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"resto-backend/internal/apperror"
	"resto-backend/internal/model"
)

// DatesBetween lists every calendar date from start to end inclusive.
func DatesBetween(start, end string, maxDays int) ([]string, error) {
	from, err := time.Parse(model.DateLayout, start)
	if err != nil {
		return nil, apperror.Newf(apperror.CodeInvalidData, "startDate %q is not a YYYY-MM-DD date", start)
	}
	to, err := time.Parse(model.DateLayout, end)
	if err != nil {
		return nil, apperror.Newf(apperror.CodeInvalidData, "endDate %q is not a YYYY-MM-DD date", end)
	}
	if to.Before(from) {
		return nil, apperror.New(apperror.CodeInvalidData, "endDate must not be before startDate")
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if maxDays > 0 && days > maxDays {
		return nil, apperror.Newf(apperror.CodeInvalidData, "date range spans %d days, at most %d allowed", days, maxDays)
	}

	dates := make([]string, 0, days)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(model.DateLayout))
	}
	return dates, nil
}

// RoleRequirements marks, for every role, whether any of the day's
// assignments is held by an employee with that role.
func RoleRequirements(roles []model.Role, assignments []model.EmployeeSchedule) []model.RoleRequirement {
	reqs := make([]model.RoleRequirement, 0, len(roles))
	for _, role := range roles {
		req := model.RoleRequirement{
			RoleID:            role.ID,
			RoleName:          role.Name,
			Required:          true,
			AssignedEmployees: []model.Employee{},
		}
		for _, a := range assignments {
			if a.Employee == nil || a.Employee.RoleID == nil || *a.Employee.RoleID != role.ID {
				continue
			}
			req.AssignedEmployees = append(req.AssignedEmployees, *a.Employee)
		}
		req.Assigned = len(req.AssignedEmployees) > 0
		reqs = append(reqs, req)
	}
	return reqs
}

// Completion is round(100 * covered / required). No required roles counts as complete.
func Completion(reqs []model.RoleRequirement) int {
	required, covered := 0, 0
	for _, r := range reqs {
		if !r.Required {
			continue
		}
		required++
		if r.Assigned {
			covered++
		}
	}
	if required == 0 {
		return 100
	}
	return int(math.Round(float64(covered) / float64(required) * 100))
}

func MissingRoles(reqs []model.RoleRequirement) []model.RoleRequirement {
	var missing []model.RoleRequirement
	for _, r := range reqs {
		if r.Required && !r.Assigned {
			missing = append(missing, r)
		}
	}
	return missing
}

// BuildDay assembles one date. assignments must already be limited to date.
func BuildDay(date string, locationID uint, roles []model.Role, assignments []model.EmployeeSchedule) model.ScheduleDay {
	if assignments == nil {
		assignments = []model.EmployeeSchedule{}
	}
	reqs := RoleRequirements(roles, assignments)
	day := model.ScheduleDay{
		Date:                 date,
		LocationID:           locationID,
		Employees:            assignments,
		RoleRequirements:     reqs,
		CompletionPercentage: Completion(reqs),
	}
	day.IsComplete = len(MissingRoles(reqs)) == 0
	day.Status = Status(day)
	return day
}

// BuildWeek groups assignments by date and builds every day in dates.
// Assignments dated outside dates are ignored.
func BuildWeek(locationID uint, dates []string, roles []model.Role, assignments []model.EmployeeSchedule) model.ScheduleWeek {
	byDate := make(map[string][]model.EmployeeSchedule, len(dates))
	for _, a := range assignments {
		byDate[a.ShiftDate] = append(byDate[a.ShiftDate], a)
	}

	week := model.ScheduleWeek{
		LocationID: locationID,
		Days:       make([]model.ScheduleDay, 0, len(dates)),
	}
	if len(dates) > 0 {
		week.StartDate = dates[0]
		week.EndDate = dates[len(dates)-1]
	}
	for _, date := range dates {
		week.Days = append(week.Days, BuildDay(date, locationID, roles, byDate[date]))
	}
	week.OverallCompletion = WeekCompletion(week.Days)
	return week
}

// WeekCompletion is the rounded mean of the day completions.
func WeekCompletion(days []model.ScheduleDay) int {
	if len(days) == 0 {
		return 0
	}
	sum := 0
	for _, d := range days {
		sum += d.CompletionPercentage
	}
	return int(math.Round(float64(sum) / float64(len(days))))
}

// ValidateDay reports uncovered roles and employees booked more than once on
// the date. elsewhere holds the same employees' assignments at any location;
// rows at other locations on the date count as extra bookings.
func ValidateDay(day model.ScheduleDay, elsewhere []model.EmployeeSchedule) model.ScheduleValidation {
	errs := []string{}
	warnings := []string{}

	if missing := MissingRoles(day.RoleRequirements); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, r := range missing {
			names[i] = r.RoleName
		}
		errs = append(errs, "Missing required roles: "+strings.Join(names, ", "))
	}

	counts := make(map[uint]int, len(day.Employees))
	names := make(map[uint]string, len(day.Employees))
	for _, a := range day.Employees {
		counts[a.EmployeeID]++
		if a.Employee != nil && a.Employee.FullName != "" {
			names[a.EmployeeID] = a.Employee.FullName
		}
	}
	for _, a := range elsewhere {
		if a.ShiftDate != day.Date || a.LocationID == day.LocationID {
			continue
		}
		if _, ok := counts[a.EmployeeID]; !ok {
			continue
		}
		counts[a.EmployeeID]++
	}
	var repeated []string
	for id, n := range counts {
		if n < 2 {
			continue
		}
		name, ok := names[id]
		if !ok {
			name = fmt.Sprintf("%d", id)
		}
		repeated = append(repeated, name)
	}
	if len(repeated) > 0 {
		sort.Strings(repeated)
		errs = append(errs, "Some employees are assigned multiple times to the same day")
		warnings = append(warnings, "Employees assigned more than once: "+strings.Join(repeated, ", "))
	}

	return model.ScheduleValidation{
		IsValid:          len(errs) == 0,
		Errors:           errs,
		Warnings:         warnings,
		RoleRequirements: day.RoleRequirements,
	}
}

// ValidateWeek concatenates day reports, each message prefixed with its date.
// elsewhere is passed through to ValidateDay.
func ValidateWeek(days []model.ScheduleDay, elsewhere []model.EmployeeSchedule) model.ScheduleValidation {
	out := model.ScheduleValidation{
		Errors:           []string{},
		Warnings:         []string{},
		RoleRequirements: []model.RoleRequirement{},
	}
	for _, day := range days {
		v := ValidateDay(day, elsewhere)
		for _, e := range v.Errors {
			out.Errors = append(out.Errors, day.Date+": "+e)
		}
		for _, w := range v.Warnings {
			out.Warnings = append(out.Warnings, day.Date+": "+w)
		}
		out.RoleRequirements = append(out.RoleRequirements, day.RoleRequirements...)
	}
	out.IsValid = len(out.Errors) == 0
	return out
}

// Status grades a built day. A day is critical only when it has roles and
// none of them is covered.
func Status(day model.ScheduleDay) model.CompletionStatus {
	if ValidateDay(day, nil).IsValid {
		return model.StatusComplete
	}
	missing := MissingRoles(day.RoleRequirements)
	if len(day.RoleRequirements) > 0 && len(missing) == len(day.RoleRequirements) {
		return model.StatusCritical
	}
	return model.StatusIncomplete
}

const ReasonAlreadyAssigned = "Employee is already assigned to this shift"

// CanAssign rejects an (employee, date, location) key that is already taken.
// Bookings at other locations on the same date are allowed here and surface as
// validation errors instead.
func CanAssign(employeeID uint, date string, locationID uint, existing []model.EmployeeSchedule) (bool, string) {
	for _, a := range existing {
		if a.EmployeeID == employeeID && a.ShiftDate == date && a.LocationID == locationID {
			return false, ReasonAlreadyAssigned
		}
	}
	return true, ""
}
