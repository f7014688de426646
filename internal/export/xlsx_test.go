package export_test

import (
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/export"
	"github.com/prepdeck/prepdeck/internal/planner"
)

func samplePlan() planner.Plan {
	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return planner.Plan{
		{
			Date: day1,
			Sessions: []planner.Session{
				{Type: planner.SessionStudy, Topic: "Algebra", Minutes: 30},
				{Type: planner.SessionPractice, Topic: "Practice questions", Minutes: 90},
			},
		},
		{
			Date: day2,
			Sessions: []planner.Session{
				{Type: planner.SessionMockTest, Topic: "Full syllabus mock test", Minutes: 120},
			},
		},
	}
}

func TestWorkbook(t *testing.T) {
	f, err := export.Workbook(samplePlan())
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}
	defer f.Close()

	cell := func(ref string) string {
		t.Helper()
		v, err := f.GetCellValue("Study Plan", ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error = %v", ref, err)
		}
		return v
	}

	// Header row.
	for ref, want := range map[string]string{"A1": "Date", "B1": "Chapter", "C1": "Task", "D1": "Time"} {
		if got := cell(ref); got != want {
			t.Errorf("cell %s = %q, want %q", ref, got, want)
		}
	}

	// First session of a day carries the date, later rows leave it blank.
	if got := cell("A2"); got != "2026-03-01" {
		t.Errorf("A2 = %q, want 2026-03-01", got)
	}
	if got := cell("A3"); got != "" {
		t.Errorf("A3 = %q, want blank (same day as the row above)", got)
	}

	if got := cell("B2"); got != "Algebra" {
		t.Errorf("B2 = %q, want Algebra", got)
	}
	if got := cell("C2"); got != "Study" {
		t.Errorf("C2 = %q, want Study", got)
	}
	if got := cell("C4"); got != "Mock Test" {
		t.Errorf("C4 = %q, want Mock Test (underscore humanized)", got)
	}
	if got := cell("D3"); got != "1 hour 30 min" {
		t.Errorf("D3 = %q, want 1 hour 30 min", got)
	}
	if got := cell("D4"); got != "2 hours" {
		t.Errorf("D4 = %q, want 2 hours", got)
	}
}

func TestWorkbook_SingleSheet(t *testing.T) {
	f, err := export.Workbook(samplePlan())
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Study Plan" {
		t.Errorf("GetSheetList() = %v, want only the Study Plan sheet", sheets)
	}
}

func TestWorkbook_EmptyPlan(t *testing.T) {
	f, err := export.Workbook(planner.Plan{})
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("Study Plan", "A1"); got != "Date" {
		t.Errorf("A1 = %q, want the header even for an empty plan", got)
	}
}
