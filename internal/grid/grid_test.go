package grid

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"dayboard/internal/model"
	"dayboard/internal/timeline"
)

func TestRender(t *testing.T) {
	color.NoColor = true

	emps := []model.Employee{
		{ID: "a", Name: "Alice", ShiftStart: 0, ShiftEnd: 26},
		{ID: "b", Name: "Bob", ShiftStart: 4, ShiftEnd: 20},
	}
	tasks := map[string][]model.Task{
		"a": {
			{ID: "t1", EmployeeID: "a", Kind: model.KindGallery, Label: "Gallery", Start: 0, End: 2},
			{ID: "t2", EmployeeID: "a", Kind: model.KindTour, Label: "Tour", Start: 4, End: 5},
		},
	}

	var b strings.Builder
	Render(&b, emps, func(id string) []model.Task { return tasks[id] })
	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != timeline.TotalRows+1 {
		t.Fatalf("expected header + %d rows, got %d lines", timeline.TotalRows, len(lines))
	}
	if !strings.Contains(lines[0], "Alice") || !strings.Contains(lines[0], "Bob") {
		t.Errorf("header missing names: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "10:00") {
		t.Errorf("first row should start at 10:00: %q", lines[1])
	}
	if !strings.Contains(lines[1], "GAL") {
		t.Errorf("expected gallery code on its start row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "·") {
		t.Errorf("expected continuation marker on second slot: %q", lines[2])
	}
	if !strings.Contains(lines[5], "TOUR") {
		t.Errorf("expected tour code at row 4: %q", lines[5])
	}
	// Bob is off shift before row 4: blank, not "-".
	if strings.Count(lines[1], "-") != 0 {
		t.Errorf("expected no open marker outside shift: %q", lines[1])
	}
}
