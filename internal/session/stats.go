package session

import (
	"context"
	"os"
)

// Stats holds schedule database statistics.
type Stats struct {
	DBPath      string          `json:"db_path"`
	DBSizeBytes int64           `json:"db_size_bytes"`
	Employees   int             `json:"employees"`
	Tasks       int             `json:"tasks"`
	PerEmployee []EmployeeStats `json:"per_employee"`
}

// EmployeeStats holds per-employee counts. Slots is the number of
// 15-minute rows covered by the employee's tasks.
type EmployeeStats struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks int    `json:"tasks"`
	Slots int    `json:"slots"`
}

// Stats returns schedule statistics.
func (s *Session) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&st.Employees)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&st.Tasks)

	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.name, COUNT(t.id), COALESCE(SUM(t.end_row - t.start_row), 0)
		FROM employees e LEFT JOIN tasks t ON t.employee_id = e.id
		GROUP BY e.id ORDER BY e.position, e.name`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var es EmployeeStats
		rows.Scan(&es.ID, &es.Name, &es.Tasks, &es.Slots)
		st.PerEmployee = append(st.PerEmployee, es)
	}

	return st, rows.Err()
}
