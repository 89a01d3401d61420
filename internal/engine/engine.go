package engine

import (
	"fmt"

	"github.com/rs/zerolog"

	"dayboard/internal/model"
	"dayboard/internal/timeline"
)

// Engine is the scheduling façade. It composes the overlap resolver
// and the compactor over a single owned Store, validating inputs
// against the caller-supplied roster. All operations are synchronous
// and mutate nothing when validation fails.
type Engine struct {
	store  *Store
	roster map[string]model.Employee
	log    zerolog.Logger
}

// New creates an engine over the given store. The roster is validation
// and display context owned by the caller; the engine never mutates it.
func New(store *Store, roster []model.Employee, log zerolog.Logger) *Engine {
	byID := make(map[string]model.Employee, len(roster))
	for _, e := range roster {
		byID[e.ID] = e
	}
	return &Engine{store: store, roster: byID, log: log}
}

// Store exposes the underlying store for read-back by the caller.
func (e *Engine) Store() *Store { return e.store }

// PlaceTask places a new single-slot task [row, row+1) of the given
// kind for the employee. Colliding tasks are trimmed, split, or
// dropped, then adjacent same-kind blocks are merged unless the placed
// kind is tour-like. Returns the stored task covering row, which is
// the new task unless compaction folded it into a neighbor.
func (e *Engine) PlaceTask(employeeID string, row int, kind model.Kind) (*model.Task, error) {
	if row < 0 || row >= timeline.TotalRows {
		return nil, fmt.Errorf("%w: row %d outside [0, %d)", ErrInvalidRange, row, timeline.TotalRows)
	}
	if _, ok := e.roster[employeeID]; !ok {
		return nil, fmt.Errorf("%w: employee %s", ErrNotFound, employeeID)
	}

	e.store.ResolveOverlaps(employeeID, row, row+1, "")
	e.store.Insert(model.Task{
		ID:         e.store.newID(),
		EmployeeID: employeeID,
		Kind:       kind,
		Label:      kind.Label(),
		Start:      row,
		End:        row + 1,
	})
	if !kind.TourLike() {
		e.store.MergeAdjacent(employeeID)
	}

	placed, _ := e.store.taskAt(employeeID, row)
	e.log.Info().
		Str("employee", employeeID).
		Str("kind", string(kind)).
		Str("range", timeline.RowRangeLabel(placed.Start, placed.End)).
		Msg("task placed")
	return &placed, nil
}

// MoveTask re-ranges an existing task to [start, end), resolving
// collisions with every other task of the same employee. The moved
// task is exempt from its own collision.
func (e *Engine) MoveTask(taskID string, start, end int) (*model.Task, error) {
	if start < 0 || start >= end || end > timeline.TotalRows {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, start, end)
	}
	t, ok := e.store.TaskByID(taskID)
	if !ok {
		return nil, fmt.Errorf("%w: task %s", ErrNotFound, taskID)
	}

	e.store.ResolveOverlaps(t.EmployeeID, start, end, taskID)
	e.store.Remove(taskID)
	t.Start, t.End = start, end
	e.store.Insert(t)
	if !t.Kind.TourLike() {
		e.store.MergeAdjacent(t.EmployeeID)
	}

	moved, _ := e.store.taskAt(t.EmployeeID, start)
	e.log.Debug().
		Str("task", taskID).
		Str("range", timeline.RowRangeLabel(start, end)).
		Msg("task moved")
	return &moved, nil
}

// RemoveTask deletes a task by id.
func (e *Engine) RemoveTask(taskID string) error {
	if !e.store.Remove(taskID) {
		return fmt.Errorf("%w: task %s", ErrNotFound, taskID)
	}
	e.log.Debug().Str("task", taskID).Msg("task removed")
	return nil
}

// TasksByEmployee returns the employee's tasks sorted by start row.
func (e *Engine) TasksByEmployee(employeeID string) []model.Task {
	return e.store.TasksByEmployee(employeeID)
}

// ResolveOverlaps exposes the resolver for callers that rewrite ranges
// directly, e.g. a drag of an existing task (pass its id as exceptID).
func (e *Engine) ResolveOverlaps(employeeID string, start, end int, exceptID string) error {
	if start < 0 || start >= end || end > timeline.TotalRows {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, start, end)
	}
	e.store.ResolveOverlaps(employeeID, start, end, exceptID)
	return nil
}

// MergeAdjacent exposes the compactor for advanced callers.
func (e *Engine) MergeAdjacent(employeeID string) {
	e.store.MergeAdjacent(employeeID)
}
