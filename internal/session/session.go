// Package session persists the day's schedule between CLI invocations.
//
// The engine itself is an in-memory core with no storage format; the
// session is the presentation-side collaborator that owns the roster,
// snapshots the task store into SQLite after each engine call, and
// seeds a fresh store on the next one.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"dayboard/internal/model"
)

// Session wraps the schedule database.
type Session struct {
	db      *sql.DB
	entropy *rand.Rand
}

// Open opens or creates the schedule database at the given path.
func Open(dbPath string) (*Session, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Session{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// NewID mints a ULID. The same generator is injected into the engine
// store so split halves and placed tasks share one id space.
func (s *Session) NewID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *Session) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		shift_start INTEGER NOT NULL,
		shift_end   INTEGER NOT NULL,
		position    INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		kind        TEXT NOT NULL,
		label       TEXT NOT NULL,
		start_row   INTEGER NOT NULL,
		end_row     INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_tasks_employee ON tasks(employee_id, start_row);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Roster returns all employees in board column order.
func (s *Session) Roster(ctx context.Context) ([]model.Employee, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, shift_start, shift_end FROM employees ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emps []model.Employee
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.ShiftStart, &e.ShiftEnd); err != nil {
			return nil, err
		}
		emps = append(emps, e)
	}
	return emps, rows.Err()
}

// EmployeeByRef resolves an employee by exact id or by case-insensitive
// unique name match.
func (s *Session) EmployeeByRef(ctx context.Context, ref string) (*model.Employee, error) {
	var e model.Employee
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, shift_start, shift_end FROM employees WHERE id = ?`, ref).
		Scan(&e.ID, &e.Name, &e.ShiftStart, &e.ShiftEnd)
	if err == nil {
		return &e, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, shift_start, shift_end FROM employees WHERE name = ? COLLATE NOCASE`, ref)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []model.Employee
	for rows.Next() {
		var m model.Employee
		if err := rows.Scan(&m.ID, &m.Name, &m.ShiftStart, &m.ShiftEnd); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	switch len(matches) {
	case 1:
		return &matches[0], nil
	case 0:
		return nil, fmt.Errorf("employee not found: %s", ref)
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.ID
		}
		return nil, fmt.Errorf("ambiguous employee %q (matches %s)", ref, strings.Join(ids, ", "))
	}
}

// AddEmployee appends an employee to the roster.
func (s *Session) AddEmployee(ctx context.Context, name string, shiftStart, shiftEnd int) (*model.Employee, error) {
	e := &model.Employee{
		ID:         s.NewID(),
		Name:       name,
		ShiftStart: shiftStart,
		ShiftEnd:   shiftEnd,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO employees (id, name, shift_start, shift_end, position)
		 VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM employees))`,
		e.ID, e.Name, e.ShiftStart, e.ShiftEnd)
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	return e, nil
}

// RenameEmployee changes an employee's display name.
func (s *Session) RenameEmployee(ctx context.Context, id, name string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE employees SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("employee not found: %s", id)
	}
	return nil
}

// RemoveEmployee deletes an employee and all their tasks.
func (s *Session) RemoveEmployee(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE employee_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("employee not found: %s", id)
	}
	return tx.Commit()
}

// Tasks returns every stored task ordered by employee and start row.
func (s *Session) Tasks(ctx context.Context) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_id, kind, label, start_row, end_row FROM tasks ORDER BY employee_id, start_row`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.EmployeeID, &t.Kind, &t.Label, &t.Start, &t.End); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ReplaceEmployeeTasks swaps one employee's stored tasks for the given
// set, in a single transaction. Called after each engine mutation.
func (s *Session) ReplaceEmployeeTasks(ctx context.Context, employeeID string, tasks []model.Task) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE employee_id = ?`, employeeID); err != nil {
		return err
	}
	for _, t := range tasks {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (id, employee_id, kind, label, start_row, end_row) VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, t.EmployeeID, t.Kind, t.Label, t.Start, t.End)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
	}
	return tx.Commit()
}

// Close closes the database.
func (s *Session) Close() error {
	return s.db.Close()
}
