// Package engine implements the interval-consistency core: an owned
// per-employee task store, the overlap resolver, the adjacent-block
// compactor, and the scheduling façade that composes them.
//
// The store is plain in-memory state. Persistence, rendering, and
// roster management belong to the caller; the engine only guarantees
// that after any operation returns, no two tasks of one employee
// overlap and eligible adjacent blocks are merged.
package engine

import (
	"sort"

	"dayboard/internal/model"
)

// Store holds every employee's tasks, ordered by start row. It owns
// the task records; accessors return copies.
type Store struct {
	tasks map[string][]model.Task
	newID func() string
}

// NewStore creates an empty store. newID supplies ids for tasks the
// store itself creates (currently only split right-halves); callers
// typically share the generator that mints their own task ids.
func NewStore(newID func() string) *Store {
	return &Store{
		tasks: make(map[string][]model.Task),
		newID: newID,
	}
}

// Seed loads existing tasks into the store, grouping by employee and
// sorting by start. Used by hosts restoring a saved schedule.
func (s *Store) Seed(tasks []model.Task) {
	for _, t := range tasks {
		s.tasks[t.EmployeeID] = append(s.tasks[t.EmployeeID], t)
	}
	for id := range s.tasks {
		s.sortEmployee(id)
	}
}

// Insert adds a task and keeps the employee's list sorted by start.
func (s *Store) Insert(t model.Task) {
	s.tasks[t.EmployeeID] = append(s.tasks[t.EmployeeID], t)
	s.sortEmployee(t.EmployeeID)
}

// Remove deletes the task with the given id. Returns false if no task
// has that id.
func (s *Store) Remove(taskID string) bool {
	for empID, ts := range s.tasks {
		for i, t := range ts {
			if t.ID == taskID {
				s.tasks[empID] = append(ts[:i], ts[i+1:]...)
				return true
			}
		}
	}
	return false
}

// TaskByID returns a copy of the task with the given id.
func (s *Store) TaskByID(taskID string) (model.Task, bool) {
	for _, ts := range s.tasks {
		for _, t := range ts {
			if t.ID == taskID {
				return t, true
			}
		}
	}
	return model.Task{}, false
}

// TasksByEmployee returns a copy of the employee's tasks sorted by
// start row.
func (s *Store) TasksByEmployee(employeeID string) []model.Task {
	ts := s.tasks[employeeID]
	out := make([]model.Task, len(ts))
	copy(out, ts)
	return out
}

// taskAt returns the employee's task whose range contains row.
func (s *Store) taskAt(employeeID string, row int) (model.Task, bool) {
	for _, t := range s.tasks[employeeID] {
		if t.Start <= row && row < t.End {
			return t, true
		}
	}
	return model.Task{}, false
}

func (s *Store) sortEmployee(employeeID string) {
	ts := s.tasks[employeeID]
	sort.Slice(ts, func(i, j int) bool { return ts[i].Start < ts[j].Start })
}
