// Package timeline defines the discretized daily row index space and
// its conversions to and from wall-clock times.
//
// The day is a fixed grid of TotalRows slots of SlotMinutes each,
// starting at 10:00. Row indices are the sole unit of time arithmetic
// in the engine; clock strings exist only at the presentation edge.
package timeline

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// TotalRows is the number of 15-minute slots in the scheduling day.
	TotalRows = 26

	// SlotMinutes is the width of one row in minutes.
	SlotMinutes = 15

	dayStartMinutes = 10 * 60
)

// ParseClock parses an "HH:MM" wall-clock string into minutes since
// midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// ToRow maps minutes since midnight to a row index by flooring against
// the slot width, clamped into [0, TotalRows].
func ToRow(minutes int) int {
	row := (minutes - dayStartMinutes) / SlotMinutes
	if minutes < dayStartMinutes {
		// Integer division truncates toward zero; anything before day
		// start clamps to the first row anyway.
		row = 0
	}
	if row > TotalRows {
		row = TotalRows
	}
	return row
}

// RowToTime formats a row index as its "HH:MM" start time. The caller
// guarantees 0 <= row <= TotalRows; no clamping is applied.
func RowToTime(row int) string {
	m := dayStartMinutes + row*SlotMinutes
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// RowRangeLabel formats a [start, end) row range as "HH:MM-HH:MM".
func RowRangeLabel(start, end int) string {
	return RowToTime(start) + "-" + RowToTime(end)
}
