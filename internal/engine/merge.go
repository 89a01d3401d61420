package engine

import "dayboard/internal/model"

// MergeAdjacent compacts the employee's tasks: walking in start order,
// a task is absorbed into the previous kept one when both share kind
// and label, the ranges are contiguous, and the kind is not tour-like.
// Tour and school-program blocks never merge, even with an identical
// neighbor, so each stays individually editable. Idempotent; never
// reorders tasks relative to their start.
func (s *Store) MergeAdjacent(employeeID string) {
	ts := s.tasks[employeeID]
	if len(ts) < 2 {
		return
	}

	out := make([]model.Task, 0, len(ts))
	for _, t := range ts {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if last.Kind == t.Kind && last.Label == t.Label &&
				last.End == t.Start && !t.Kind.TourLike() {
				last.End = t.End
				continue
			}
		}
		out = append(out, t)
	}

	s.tasks[employeeID] = out
}
