package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"resto-backend/internal/model"
)

func testWeek() *model.ScheduleWeek {
	cookReq := func(names ...string) model.RoleRequirement {
		req := model.RoleRequirement{RoleID: 1, RoleName: "Cook", Required: true}
		for _, n := range names {
			req.AssignedEmployees = append(req.AssignedEmployees, model.Employee{FullName: n})
		}
		req.Assigned = len(names) > 0
		return req
	}
	return &model.ScheduleWeek{
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-02",
		LocationID: 4,
		Days: []model.ScheduleDay{
			{Date: "2024-01-01", RoleRequirements: []model.RoleRequirement{cookReq("Ann", "Bob")}, CompletionPercentage: 100},
			{Date: "2024-01-02", RoleRequirements: []model.RoleRequirement{cookReq()}, CompletionPercentage: 0},
		},
		OverallCompletion: 50,
	}
}

func TestWeekXLSX(t *testing.T) {
	data, err := WeekXLSX(testWeek())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	get := func(axis string) string {
		v, err := f.GetCellValue(sheetName, axis)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Location 4: 2024-01-01 to 2024-01-02", get("A1"))
	assert.Equal(t, "Role", get("A3"))
	assert.Equal(t, "2024-01-01 (Mon)", get("B3"))
	assert.Equal(t, "Cook", get("A4"))
	assert.Equal(t, "Ann, Bob", get("B4"))
	assert.Equal(t, "", get("C4"))
	assert.Equal(t, "Completion %", get("A5"))
	assert.Equal(t, "100", get("B5"))
	assert.Equal(t, "0", get("C5"))
	assert.Equal(t, "50", get("B6"))
	assert.Equal(t, []string{sheetName}, f.GetSheetList())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "schedule_4_2024-01-01_2024-01-02.xlsx", FileName(testWeek()))
}
