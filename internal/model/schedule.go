package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for shift dates.
const DateLayout = "2006-01-02"

// Shift is the single operational record of a calendar date, shared by all locations.
type Shift struct {
	ShiftDate string          `json:"shift_date" gorm:"primaryKey;size:10"`
	Profit    decimal.Decimal `json:"profit" gorm:"type:decimal(14,2)"`
	StartedAt time.Time       `json:"started_at"`
	AdminID   *string         `json:"admin_id"`
	Timestamps
}

func (Shift) TableName() string { return "shifts" }

// EmployeeSchedule assigns one employee to one shift date at one location.
// The composite primary key rejects double assignment at the store.
type EmployeeSchedule struct {
	EmployeeID uint   `json:"employee_id" gorm:"primaryKey;autoIncrement:false"`
	ShiftDate  string `json:"shift_date" gorm:"primaryKey;size:10"`
	LocationID uint   `json:"location_id" gorm:"primaryKey;autoIncrement:false"`
	Timestamps

	Employee *Employee           `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	Location *RestaurantLocation `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

func (EmployeeSchedule) TableName() string { return "employees_schedule" }

// RoleRequirement is derived per role per day and never stored.
type RoleRequirement struct {
	RoleID            uint       `json:"role_id"`
	RoleName          string     `json:"role_name"`
	Required          bool       `json:"required"`
	Assigned          bool       `json:"assigned"`
	AssignedEmployees []Employee `json:"assignedEmployees"`
}

type CompletionStatus string

const (
	StatusComplete   CompletionStatus = "complete"
	StatusIncomplete CompletionStatus = "incomplete"
	StatusCritical   CompletionStatus = "critical"
)

type ScheduleDay struct {
	Date                 string             `json:"date"`
	LocationID           uint               `json:"location_id"`
	Employees            []EmployeeSchedule `json:"employees"`
	RoleRequirements     []RoleRequirement  `json:"roleRequirements"`
	IsComplete           bool               `json:"isComplete"`
	CompletionPercentage int                `json:"completionPercentage"`
	Status               CompletionStatus   `json:"status"`
}

type ScheduleWeek struct {
	StartDate         string        `json:"startDate"`
	EndDate           string        `json:"endDate"`
	LocationID        uint          `json:"location_id"`
	Days              []ScheduleDay `json:"days"`
	OverallCompletion int           `json:"overallCompletion"`
}

type ScheduleValidation struct {
	IsValid          bool              `json:"isValid"`
	Errors           []string          `json:"errors"`
	Warnings         []string          `json:"warnings"`
	RoleRequirements []RoleRequirement `json:"roleRequirements"`
}

// SchedulePermissions is what a signed-in employee may do with schedules.
type SchedulePermissions struct {
	CanView   bool   `json:"canView"`
	CanEdit   bool   `json:"canEdit"`
	CanDelete bool   `json:"canDelete"`
	CanCreate bool   `json:"canCreate"`
	IsAdmin   bool   `json:"isAdmin"`
	RoleID    *uint  `json:"roleId"`
	RoleName  string `json:"roleName"`
}
