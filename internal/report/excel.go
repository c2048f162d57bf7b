package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"resto-backend/internal/model"
)

const sheetName = "Schedule"

// WeekWorkbook lays a computed week out as roles by dates. Each cell lists the
// employees covering that role on that date; the last row holds completion.
func WeekWorkbook(week *model.ScheduleWeek) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()
		return nil, err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(week.Days) + 1)
	title := fmt.Sprintf("Location %d: %s to %s", week.LocationID, week.StartDate, week.EndDate)
	f.SetCellValue(sheetName, "A1", title)
	if lastCol != "A" {
		f.MergeCell(sheetName, "A1", lastCol+"1")
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	}

	const headerRow = 3
	f.SetCellValue(sheetName, cell(1, headerRow), "Role")
	for i, day := range week.Days {
		f.SetCellValue(sheetName, cell(i+2, headerRow), weekdayLabel(day.Date))
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		f.SetCellStyle(sheetName, cell(1, headerRow), cell(len(week.Days)+1, headerRow), headerStyle)
	}

	row := headerRow + 1
	if len(week.Days) > 0 {
		for r, req := range week.Days[0].RoleRequirements {
			f.SetCellValue(sheetName, cell(1, row), req.RoleName)
			for i, day := range week.Days {
				if r >= len(day.RoleRequirements) {
					continue
				}
				f.SetCellValue(sheetName, cell(i+2, row), employeeNames(day.RoleRequirements[r].AssignedEmployees))
			}
			row++
		}
	}

	f.SetCellValue(sheetName, cell(1, row), "Completion %")
	for i, day := range week.Days {
		f.SetCellValue(sheetName, cell(i+2, row), day.CompletionPercentage)
	}
	row++
	f.SetCellValue(sheetName, cell(1, row), "Overall %")
	f.SetCellValue(sheetName, cell(2, row), week.OverallCompletion)

	f.SetColWidth(sheetName, "A", "A", 18)
	if lastCol != "A" {
		f.SetColWidth(sheetName, "B", lastCol, 22)
	}
	return f, nil
}

// WeekXLSX renders the workbook to bytes.
func WeekXLSX(week *model.ScheduleWeek) ([]byte, error) {
	f, err := WeekWorkbook(week)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName is the attachment name for a week export.
func FileName(week *model.ScheduleWeek) string {
	return fmt.Sprintf("schedule_%d_%s_%s.xlsx", week.LocationID, week.StartDate, week.EndDate)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func weekdayLabel(date string) string {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s (%s)", date, t.Weekday().String()[:3])
}

func employeeNames(emps []model.Employee) string {
	names := make([]string, 0, len(emps))
	for _, e := range emps {
		names = append(names, e.FullName)
	}
	return strings.Join(names, ", ")
}
