package engine

import "dayboard/internal/model"

// ResolveOverlaps rewrites the employee's tasks so none overlaps
// [start, end). Each existing task is classified independently against
// the range:
//
//   - disjoint: kept unchanged
//   - fully covered: dropped
//   - overlapping on the left: tail trimmed to end at start
//   - overlapping on the right: head trimmed to begin at end
//   - straddling both sides: split into a left and a right remainder,
//     both keeping the original kind and label
//
// exceptID exempts one task from its own collision (the task being
// moved); pass "" when placing a brand-new task. Tasks of other
// employees are never touched. Re-running against an already resolved
// state is a no-op.
func (s *Store) ResolveOverlaps(employeeID string, start, end int, exceptID string) {
	existing := s.tasks[employeeID]
	if len(existing) == 0 {
		return
	}

	out := make([]model.Task, 0, len(existing)+1)
	for _, t := range existing {
		switch {
		case t.ID == exceptID:
			out = append(out, t)
		case t.End <= start || t.Start >= end:
			out = append(out, t)
		case t.Start >= start && t.End <= end:
			// covered: dropped
		case t.Start < start && t.End > end:
			left := t
			left.End = start
			right := t
			right.ID = s.newID()
			right.Start = end
			out = append(out, left, right)
		case t.Start < start:
			t.End = start
			out = append(out, t)
		default:
			t.Start = end
			out = append(out, t)
		}
	}

	s.tasks[employeeID] = out
	s.sortEmployee(employeeID)
}
