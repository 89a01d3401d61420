// Package grid renders the day schedule as a colored text grid:
// one row per 15-minute slot, one column per employee.
package grid

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"dayboard/internal/model"
	"dayboard/internal/timeline"
)

var kindCodes = map[model.Kind]string{
	model.KindFrontDesk:     "FD",
	model.KindGallery:       "GAL",
	model.KindBreak:         "BRK",
	model.KindPrep:          "PRP",
	model.KindTour:          "TOUR",
	model.KindTidy:          "TDY",
	model.KindSchoolPre:     "SPR",
	model.KindSchoolProgram: "SCH",
}

var kindColors = map[model.Kind]*color.Color{
	model.KindFrontDesk:     color.New(color.FgBlue),
	model.KindGallery:       color.New(color.FgGreen),
	model.KindBreak:         color.New(color.FgYellow),
	model.KindPrep:          color.New(color.FgCyan),
	model.KindTour:          color.New(color.FgMagenta, color.Bold),
	model.KindTidy:          color.New(color.FgWhite),
	model.KindSchoolPre:     color.New(color.FgHiCyan),
	model.KindSchoolProgram: color.New(color.FgHiRed, color.Bold),
}

const colWidth = 10

// Render writes the schedule grid. tasksFor returns an employee's
// tasks sorted by start row.
func Render(w io.Writer, emps []model.Employee, tasksFor func(employeeID string) []model.Task) {
	// Header row: employee names.
	fmt.Fprintf(w, "%-6s", "")
	for _, e := range emps {
		fmt.Fprintf(w, "%-*s", colWidth, clip(e.Name, colWidth-1))
	}
	fmt.Fprintln(w)

	byEmp := make(map[string][]model.Task, len(emps))
	for _, e := range emps {
		byEmp[e.ID] = tasksFor(e.ID)
	}

	for row := 0; row < timeline.TotalRows; row++ {
		fmt.Fprintf(w, "%-6s", timeline.RowToTime(row))
		for _, e := range emps {
			fmt.Fprint(w, cell(e, byEmp[e.ID], row))
		}
		fmt.Fprintln(w)
	}
}

// cell renders one slot for one employee, padded to colWidth columns.
func cell(e model.Employee, tasks []model.Task, row int) string {
	for _, t := range tasks {
		if t.Start <= row && row < t.End {
			var s string
			if row == t.Start {
				s = kindCodes[t.Kind]
			} else {
				s = "·"
			}
			pad := strings.Repeat(" ", colWidth-utf8.RuneCountInString(s))
			return kindColors[t.Kind].Sprint(s) + pad
		}
	}
	if row < e.ShiftStart || row >= e.ShiftEnd {
		return strings.Repeat(" ", colWidth)
	}
	return fmt.Sprintf("%-*s", colWidth, "-")
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
