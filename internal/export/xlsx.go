// Package export renders study plans into downloadable spreadsheet form.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/prepdeck/prepdeck/internal/planner"
)

const sheetName = "Study Plan"

var titler = cases.Title(language.English)

// Workbook renders a plan as an xlsx workbook with one row per session.
// The date column is written only on the first row of each day so the sheet
// reads like a calendar. The caller owns closing the returned file.
func Workbook(plan planner.Plan) (*excelize.File, error) {
	f := excelize.NewFile()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	header := []any{"Date", "Chapter", "Task", "Time"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "D1", style)
	}

	row := 2
	for _, day := range plan {
		for i, session := range day.Sessions {
			date := ""
			if i == 0 {
				date = day.Date.Format("2006-01-02")
			}
			cells := []any{
				date,
				session.Topic,
				taskLabel(session.Type),
				formatMinutes(session.Minutes),
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
			if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
				f.Close()
				return nil, fmt.Errorf("writing row %d: %w", row, err)
			}
			row++
		}
	}

	for col, width := range map[string]float64{"A": 12, "B": 36, "C": 16, "D": 14} {
		f.SetColWidth(sheetName, col, col, width)
	}

	return f, nil
}

// taskLabel humanizes a session type for display: "mock_test" becomes
// "Mock Test".
func taskLabel(t planner.SessionType) string {
	return titler.String(strings.ReplaceAll(string(t), "_", " "))
}

// formatMinutes renders a duration the way a student would say it.
func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	unit := "hours"
	if hours == 1 {
		unit = "hour"
	}
	if rest == 0 {
		return fmt.Sprintf("%d %s", hours, unit)
	}
	return fmt.Sprintf("%d %s %d min", hours, unit, rest)
}
