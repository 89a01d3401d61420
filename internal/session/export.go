package session

import (
	"context"

	"dayboard/internal/model"
)

// Snapshot is the JSON export format: the full roster plus every task.
type Snapshot struct {
	Employees []model.Employee `json:"employees"`
	Tasks     []model.Task     `json:"tasks"`
}

// Export returns the whole schedule as a snapshot.
func (s *Session) Export(ctx context.Context) (*Snapshot, error) {
	emps, err := s.Roster(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Employees: emps, Tasks: tasks}, nil
}

// Import replaces the session contents with the snapshot. Ids from the
// snapshot are kept so task handles survive a round trip.
func (s *Session) Import(ctx context.Context, snap *Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM employees`); err != nil {
		return err
	}

	for i, e := range snap.Employees {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO employees (id, name, shift_start, shift_end, position) VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.Name, e.ShiftStart, e.ShiftEnd, i+1)
		if err != nil {
			return err
		}
	}
	for _, t := range snap.Tasks {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (id, employee_id, kind, label, start_row, end_row) VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, t.EmployeeID, t.Kind, t.Label, t.Start, t.End)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
